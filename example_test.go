//go:build !fixedarray_unchecked

package fixedarray

import (
	"errors"
	"fmt"
)

// Example demonstrates basic array usage
func Example() {
	// Capacity is part of the type
	a := NewFilled[int, [5]int](7)
	defer a.Release()

	fmt.Print(a)

	// Bulk assignment with an offset
	if err := a.Assign(9, 1, 3); err != nil {
		fmt.Println(err)
	}
	fmt.Println(a.Slice())

	// Spans reaching past the end are rejected
	err := a.Assign(1, 3, 4)
	fmt.Println(errors.Is(err, ErrBoundsViolation))
	fmt.Println(a.Slice())

	// Output:
	// Length: [5]
	// 7
	// 7
	// 7
	// 7
	// 7
	// [7 9 9 9 7]
	// true
	// [7 9 9 9 7]
}

// ExampleNewCopy demonstrates copying into a larger array
func ExampleNewCopy() {
	small, _ := NewOf[int, [3]int](1, 2, 3)

	large, err := NewCopy[int, [5]int](small)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(large.Len(), large.Slice())

	// Output:
	// 5 [1 2 3 0 0]
}

// ExampleNewMove demonstrates that a move empties its source
func ExampleNewMove() {
	src, _ := NewOf[int, [5]int](1, 2, 3, 4, 5)

	dst, _ := NewMove[int, [5]int](src)
	fmt.Println(dst.Slice())
	fmt.Println(src.Begin().IsNull(), src.Len())

	// Output:
	// [1 2 3 4 5]
	// true 0
}

// Example_backward demonstrates reverse iteration
func Example_backward() {
	a, _ := NewOf[string, [3]string]("a", "b", "c")

	for i, v := range a.Backward() {
		fmt.Println(i, v)
	}

	// Output:
	// 2 c
	// 1 b
	// 0 a
}

// ExampleArray_Metrics demonstrates inspecting an array's footprint
func ExampleArray_Metrics() {
	a := New[int64, [16]int64]()

	metrics := a.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Capacity: %d\n", metrics.Capacity)
	fmt.Printf("  Length: %d\n", metrics.Length)
	fmt.Printf("  Element size: %d bytes\n", metrics.ElemSize)
	fmt.Printf("  Storage: %d bytes\n", metrics.StorageBytes)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Capacity: 16
	//   Length: 16
	//   Element size: 8 bytes
	//   Storage: 128 bytes
	//   Utilization: 100.0%
}
