package fb

import (
	"iter"
	"slices"
)

// List is an immutable ordered sequence. The zero value is empty.
type List[T any] struct {
	items []T
}

// ListOf returns a List holding a copy of items.
func ListOf[T any](items ...T) List[T] {
	return List[T]{items: slices.Clone(items)}
}

// ListFrom collects seq into a List.
func ListFrom[T any](seq iter.Seq[T]) List[T] {
	return List[T]{items: slices.Collect(seq)}
}

func (l List[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i. It panics when i is out of range.
func (l List[T]) At(i int) T {
	return l.items[i]
}

func (l List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

func (l List[T]) Values() iter.Seq[T] {
	return slices.Values(l.items)
}

// Slice returns a copy of the elements.
func (l List[T]) Slice() []T {
	return slices.Clone(l.items)
}

// Contains reports whether an element Equal to v is present.
func (l List[T]) Contains(v T) bool {
	return slices.ContainsFunc(l.items, func(item T) bool { return Equal(item, v) })
}

func (l List[T]) Add(T) error {
	return unsupported("List.Add")
}

func (l List[T]) Clear() error {
	return unsupported("List.Clear")
}

// Equal compares element-wise, in order.
func (l List[T]) Equal(other List[T]) bool {
	return Equal(l.items, other.items)
}

// Hash is consistent with Equal.
func (l List[T]) Hash() uint64 {
	return HashOf(l.items)
}

func (l List[T]) String() string {
	return formatSeq(l.Values())
}
