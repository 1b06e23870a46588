package fixedarray

import (
	"fmt"
	"io"
	"iter"
)

// Container is the read surface shared by fixed-size containers.
// String and WriteTo render the container in its textual dump form.
type Container[T any] interface {
	Len() int
	At(i int) *T
	Begin() Iterator[T]
	End() Iterator[T]
	fmt.Stringer
	io.WriterTo
}

// base holds the begin/end pair a container publishes over its storage and
// forwards length, indexing and iteration to it.
type base[T any] struct {
	begin Iterator[T]
	end   Iterator[T]
}

// publish points the iterator pair at s.
func (b *base[T]) publish(s []T) {
	b.begin, b.end = SpanOf(s)
}

// detach resets the iterator pair to the null sentinel.
func (b *base[T]) detach() {
	b.begin, b.end = Iterator[T]{}, Iterator[T]{}
}

// view returns the published span, or nil when detached.
func (b *base[T]) view() []T {
	if b.begin.IsNull() {
		return nil
	}
	return b.begin.span[b.begin.pos:b.end.pos]
}

// Len returns end - begin: the capacity, or 0 once detached.
func (b *base[T]) Len() int {
	return b.end.Sub(b.begin)
}

// At returns a pointer to element i. It panics if i is out of range.
func (b *base[T]) At(i int) *T {
	return &b.view()[i]
}

// Get returns a copy of element i. It panics if i is out of range.
func (b *base[T]) Get(i int) T {
	return b.view()[i]
}

// Begin returns the iterator at element 0.
func (b *base[T]) Begin() Iterator[T] { return b.begin }

// End returns the iterator one past the last element.
func (b *base[T]) End() Iterator[T] { return b.end }

// RBegin returns the reverse iterator at the last element.
func (b *base[T]) RBegin() ReverseIterator[T] { return Reverse(b.end) }

// REnd returns the reverse iterator one before element 0.
func (b *base[T]) REnd() ReverseIterator[T] { return Reverse(b.begin) }

// All yields index/value pairs in index order.
func (b *base[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.view() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the elements in index order.
func (b *base[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.view() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from the last element to the first.
func (b *base[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := b.view()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
