// Package fixedarray implements a fixed-capacity sequence container for Go.
//
// # Overview
//
// An Array holds exactly N elements of T in storage that lives inside the
// Array value itself. It never grows, never shrinks and never allocates a
// separate backing buffer. The capacity is part of the type: the second type
// parameter is the backing array type [N]T.
//
//	type Five = fixedarray.Array[int, [5]int]
//
// # Basic Usage
//
//	a := fixedarray.NewFilled[int, [5]int](7) // [7 7 7 7 7]
//	defer a.Release()                          // destroy every slot once
//
//	// Bulk assignment is bounds-checked
//	if err := a.Assign(9, 1, 3); err != nil {   // [7 9 9 9 7]
//		return err
//	}
//
//	// Indexing and iteration
//	*a.At(0) = 1
//	for i, v := range a.All() {
//		fmt.Println(i, v)
//	}
//
//	// Textual dump
//	fmt.Print(a) // "Length: [5]\n1\n9\n9\n9\n7\n"
//
// # Construction
//
// Every constructor leaves all N slots constructed:
//
//   - New: zero values
//   - NewFilled: copies of one value
//   - NewOf, NewFromRange: a literal sequence or iterator range, zero padded
//   - NewCopy, NewMove: another Array of capacity M <= N, zero padded
//   - NewEmplaced: one constructor call per slot with a shared argument pack
//   - NewGenerated, NewGeneratedErr: one generator call per slot in index order
//
// A move leaves the source emptied: its slots are zeroed and Begin/End report
// the null Iterator.
//
// # Bounds Safety
//
// Operations whose span would reach past N return a *BoundsError, which
// matches ErrBoundsViolation, and leave the array unchanged. The checks are
// controlled by the BoundsChecked constant; building with
//
//	go build -tags fixedarray_unchecked
//
// compiles them out. Correct programs behave identically either way.
//
// # Thread Safety
//
// Array is not goroutine-safe. Concurrent mutation needs external locking.
// An Array must not be copied by value; go vet reports such copies.
//
// # Performance Characteristics
//
//   - Indexing, Data, Len, Cap, checks: O(1)
//   - Construction, Assign, Copy, Move, Release: O(N) or O(count)
//   - Memory overhead: the begin/end iterator pair and the capacity
package fixedarray
