package fixedarray

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Destroyer is implemented by element types that own something which must be
// released when their slot is destroyed. Release and failed constructors call
// Destroy exactly once per constructed slot.
type Destroyer interface {
	Destroy()
}

// capacityOf returns N for a storage type A == [N]T and panics for anything else.
func capacityOf[T, A any]() int {
	at := reflect.TypeFor[A]()
	et := reflect.TypeFor[T]()
	if at.Kind() != reflect.Array || at.Elem() != et {
		panic(fmt.Sprintf("fixedarray: storage type %v is not an array of %v", at, et))
	}
	return at.Len()
}

// slotsOf views inline storage as a slice of n slots.
// The result is never nil, even for n == 0.
func slotsOf[T, A any](storage *A, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(storage)), n)
}

// constructAt places v into the slot at p.
func constructAt[T any](p *T, v T) {
	*p = v
}

// destroyAt runs the element's Destroy hook, if any, and zeroes the slot.
func destroyAt[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	} else if d, ok := any(*p).(Destroyer); ok && !isNil(d) {
		d.Destroy()
	}
	var zero T
	*p = zero
}

// destroyRange destroys slots in reverse order.
func destroyRange[T any](s []T) {
	for i := len(s) - 1; i >= 0; i-- {
		destroyAt(&s[i])
	}
}

// constructRange fills s by calling build for each index in order. If build
// fails or panics, the slots built so far are destroyed before the failure
// propagates.
func constructRange[T any](s []T, build func(i int) (T, error)) error {
	built := 0
	defer func() {
		if built < len(s) {
			destroyRange(s[:built])
		}
	}()
	for i := range s {
		v, err := build(i)
		if err != nil {
			return err
		}
		constructAt(&s[i], v)
		built++
	}
	return nil
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
