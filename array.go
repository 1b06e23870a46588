// Package fixedarray implements a fixed-capacity sequence container with
// inline storage. Typical usage: declare the capacity through the backing
// array type, fill the container once, then work on it through bounds-checked
// bulk operations and iterators.
package fixedarray

import "math"

// Array owns exactly N slots of T stored inline, where A is the backing
// array type [N]T. Not goroutine-safe. An Array must not be copied by value
// after construction: its iterators point into its own storage.
type Array[T any, A any] struct {
	noCopy noCopy
	base[T]
	storage  A
	n        int
	released bool
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New returns an Array whose slots all hold the zero value of T.
// It panics if A is not an array type with element type T.
func New[T, A any]() *Array[T, A] {
	return new(Array[T, A]).Init()
}

// Init resets a to N zero-valued slots and publishes its iterator pair.
// It is the way to prepare a zero Array declared as a variable.
func (a *Array[T, A]) Init() *Array[T, A] {
	var zero A
	a.storage = zero
	a.n = capacityOf[T, A]()
	a.released = false
	a.publish(a.slots())
	return a
}

// NewFilled returns an Array whose slots are all copies of v.
func NewFilled[T, A any](v T) *Array[T, A] {
	a := New[T, A]()
	_ = constructRange(a.slots(), func(int) (T, error) { return v, nil })
	return a
}

// NewFromRange copies [first, last) into the leading slots; the remaining
// slots hold the zero value. A source longer than N is a BoundsError.
func NewFromRange[T, A any](first, last Iterator[T]) (*Array[T, A], error) {
	a := New[T, A]()
	count := last.Sub(first)
	if err := a.checkSpan(0, count); err != nil {
		return nil, err
	}
	count = min(max(count, 0), a.n)
	s := a.slots()
	for i := 0; i < count; i++ {
		constructAt(&s[i], first.Add(i).Value())
	}
	return a, nil
}

// NewOf copies vals into the leading slots; the remaining slots hold the
// zero value. More than N values is a BoundsError.
func NewOf[T, A any](vals ...T) (*Array[T, A], error) {
	first, last := SpanOf(vals)
	return NewFromRange[T, A](first, last)
}

// NewCopy returns an Array of capacity N holding a copy of src's M elements
// followed by zero values. M > N is a BoundsError.
func NewCopy[T, A, B any](src *Array[T, B]) (*Array[T, A], error) {
	src.panicIfReleased()
	a := New[T, A]()
	if err := a.checkFit(src.Len()); err != nil {
		return nil, err
	}
	copy(a.slots(), src.view())
	return a, nil
}

// NewMove is NewCopy followed by emptying src: its slots are zeroed and its
// iterator pair is reset to the null sentinel.
func NewMove[T, A, B any](src *Array[T, B]) (*Array[T, A], error) {
	a, err := NewCopy[T, A](src)
	if err != nil {
		return nil, err
	}
	src.empty()
	return a, nil
}

// NewEmplaced builds every slot by calling ctor with the same args.
// args is passed by value to each call, so it must be safe to share:
// a pack holding something that can only be consumed once serves the first
// slot only. If ctor panics, the slots already built are destroyed.
func NewEmplaced[T, A, P any](ctor func(P) T, args P) *Array[T, A] {
	a := New[T, A]()
	_ = constructRange(a.slots(), func(int) (T, error) { return ctor(args), nil })
	return a
}

// NewGenerated fills the slots with successive results of gen, in index order.
// If gen panics, the slots already built are destroyed before the panic
// continues.
func NewGenerated[T, A any](gen func() T) *Array[T, A] {
	a := New[T, A]()
	_ = constructRange(a.slots(), func(int) (T, error) { return gen(), nil })
	return a
}

// NewGeneratedErr is NewGenerated for a fallible generator. When gen fails
// or panics, the slots already built are destroyed before the failure is
// passed on.
func NewGeneratedErr[T, A any](gen func() (T, error)) (*Array[T, A], error) {
	a := New[T, A]()
	err := constructRange(a.slots(), func(int) (T, error) { return gen() })
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Clone returns an element-wise copy of a.
func (a *Array[T, A]) Clone() *Array[T, A] {
	a.panicIfReleased()
	c := New[T, A]()
	copy(c.slots(), a.view())
	return c
}

// Release destroys every slot exactly once, last slot first, and makes a
// unusable. Subsequent operations panic; further Release calls are no-ops.
func (a *Array[T, A]) Release() {
	if a.released {
		return
	}
	destroyRange(a.slots())
	a.detach()
	a.released = true
}

// Data returns the address of slot 0, or nil for N == 0 and detached arrays.
func (a *Array[T, A]) Data() *T {
	return a.begin.Ptr()
}

// Slice returns the slots as a slice sharing a's storage.
// It is nil once a has been moved from or released.
func (a *Array[T, A]) Slice() []T {
	return a.view()
}

// Cap returns N.
func (a *Array[T, A]) Cap() int {
	return a.n
}

// Moved reports whether a has been emptied by a move.
func (a *Array[T, A]) Moved() bool {
	return a.begin.IsNull() && !a.released
}

// slots views the full inline storage regardless of the published pair.
func (a *Array[T, A]) slots() []T {
	return slotsOf[T](&a.storage, a.n)
}

// empty zeroes the slots after their values were handed to another array and
// detaches the iterator pair.
func (a *Array[T, A]) empty() {
	clear(a.slots())
	a.detach()
}

// reattach republishes the iterator pair of a moved-from array.
func (a *Array[T, A]) reattach() {
	if a.begin.IsNull() {
		a.publish(a.slots())
	}
}

// checkFit fails when size slots would not fit in a.
func (a *Array[T, A]) checkFit(size int) error {
	if BoundsChecked && size > a.n {
		return &BoundsError{Requested: size, Capacity: a.n}
	}
	return nil
}

// checkSpan fails when [offset, offset+count) is not inside [0, N).
// The comparison never adds offset and count, so huge inputs cannot wrap.
func (a *Array[T, A]) checkSpan(offset, count int) error {
	if !BoundsChecked {
		return nil
	}
	if offset < 0 || count < 0 || count > a.n || offset > a.n-count {
		return &BoundsError{Requested: spanEnd(offset, count), Capacity: a.n}
	}
	return nil
}

// spanEnd returns offset+count saturated at the int limits.
func spanEnd(offset, count int) int {
	switch {
	case count > 0 && offset > math.MaxInt-count:
		return math.MaxInt
	case count < 0 && offset < math.MinInt-count:
		return math.MinInt
	}
	return offset + count
}

// panicIfReleased panics if the array has been released.
func (a *Array[T, A]) panicIfReleased() {
	if a.released {
		panic("fixedarray: use after Release()")
	}
}

// panicIfDetached panics if the array has been released or moved from.
func (a *Array[T, A]) panicIfDetached() {
	a.panicIfReleased()
	if a.begin.IsNull() {
		panic("fixedarray: use of moved-from array")
	}
}
