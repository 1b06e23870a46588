package fixedarray

import "unsafe"

// Iterator is a random-access cursor over a contiguous span of T.
// The zero value is the null sentinel: it refers to no storage and is what a
// moved-from or released Array reports from Begin and End.
type Iterator[T any] struct {
	span []T
	pos  int
	raw  bool // built from a bare address; positions are not bounds-checked
}

// IteratorOf returns an iterator positioned at the element p points to.
// Its span is unknown, so moving it and dereferencing it is only valid while
// the caller keeps it inside the storage p belongs to.
func IteratorOf[T any](p *T) Iterator[T] {
	if p == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{span: unsafe.Slice(p, 1), raw: true}
}

// SpanOf returns the [first, last) iterator pair covering s.
func SpanOf[T any](s []T) (first, last Iterator[T]) {
	if s == nil {
		return Iterator[T]{}, Iterator[T]{}
	}
	return Iterator[T]{span: s}, Iterator[T]{span: s, pos: len(s)}
}

// IsNull reports whether it is the null sentinel.
func (it Iterator[T]) IsNull() bool {
	return it.span == nil
}

// Next returns the iterator one element forward.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns the iterator one element back.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add returns the iterator moved by n elements. n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the signed distance it - other in elements.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	d := it.pos - other.pos
	p, q := unsafe.SliceData(it.span), unsafe.SliceData(other.span)
	if p == q {
		return d
	}
	size := int(unsafe.Sizeof(*p))
	if size == 0 || p == nil || q == nil {
		return d
	}
	return d + (int(uintptr(unsafe.Pointer(p)))-int(uintptr(unsafe.Pointer(q))))/size
}

// Equal reports whether both iterators denote the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.IsNull() == other.IsNull() && it.Sub(other) == 0
}

// Less reports whether it is positioned before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Sub(other) < 0
}

// Ref returns a pointer to the element under the cursor.
// It panics if the cursor is outside its span.
func (it Iterator[T]) Ref() *T {
	if it.raw {
		return it.addr()
	}
	return &it.span[it.pos]
}

// Value returns a copy of the element under the cursor.
func (it Iterator[T]) Value() T {
	return *it.Ref()
}

// Ptr returns the raw element address, or nil for end and null iterators.
// An iterator from IteratorOf always reports its computed address.
func (it Iterator[T]) Ptr() *T {
	if it.raw {
		return it.addr()
	}
	if it.pos < 0 || it.pos >= len(it.span) {
		return nil
	}
	return &it.span[it.pos]
}

// addr computes the element address by pointer arithmetic from the span start.
func (it Iterator[T]) addr() *T {
	p := unsafe.SliceData(it.span)
	return (*T)(unsafe.Add(unsafe.Pointer(p), it.pos*int(unsafe.Sizeof(*p))))
}

// ReverseIterator walks a span backwards. Like its forward base, it refers
// to the element just before the base position.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Reverse wraps it so that the result dereferences to it.Prev().
func Reverse[T any](it Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{base: it}
}

// Base returns the underlying forward iterator.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

// IsNull reports whether the base iterator is the null sentinel.
func (r ReverseIterator[T]) IsNull() bool { return r.base.IsNull() }

// Next moves one element towards the front of the span.
func (r ReverseIterator[T]) Next() ReverseIterator[T] { return r.Add(1) }

// Prev moves one element towards the back of the span.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] { return r.Add(-1) }

// Add moves the cursor n elements in reverse direction.
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Add(-n)}
}

// Sub returns the signed reverse distance r - other.
func (r ReverseIterator[T]) Sub(other ReverseIterator[T]) int {
	return other.base.Sub(r.base)
}

// Equal reports whether both reverse iterators denote the same position.
func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// Ref returns a pointer to the element under the cursor.
func (r ReverseIterator[T]) Ref() *T { return r.base.Prev().Ref() }

// Value returns a copy of the element under the cursor.
func (r ReverseIterator[T]) Value() T { return r.base.Prev().Value() }
