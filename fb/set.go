package fb

import "iter"

// Set is an immutable set that iterates in first-insertion order. Equality
// ignores order. The zero value is empty.
type Set[T comparable] struct {
	s *OrderedSet[T]
}

// SetOf returns a Set of items, dropping duplicates.
func SetOf[T comparable](items ...T) Set[T] {
	s := &OrderedSet[T]{}
	for _, v := range items {
		s.Add(v)
	}

	return Set[T]{s: s}
}

// SetFrom collects seq into a Set.
func SetFrom[T comparable](seq iter.Seq[T]) Set[T] {
	s := &OrderedSet[T]{}
	for v := range seq {
		s.Add(v)
	}

	return Set[T]{s: s}
}

func (s Set[T]) Len() int {
	if s.s == nil {
		return 0
	}

	return s.s.Len()
}

func (s Set[T]) Contains(v T) bool {
	return s.s != nil && s.s.Contains(v)
}

func (s Set[T]) Values() iter.Seq[T] {
	if s.s == nil {
		return func(func(T) bool) {}
	}

	return s.s.Values()
}

// Slice returns a copy of the elements in insertion order.
func (s Set[T]) Slice() []T {
	if s.s == nil {
		return nil
	}

	return s.s.Slice()
}

func (s Set[T]) Add(T) error {
	return unsupported("Set.Add")
}

func (s Set[T]) Remove(T) error {
	return unsupported("Set.Remove")
}

func (s Set[T]) Clear() error {
	return unsupported("Set.Clear")
}

// Equal reports whether both sets hold the same elements, in any order.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}

	for v := range s.Values() {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}

// Hash is consistent with Equal.
func (s Set[T]) Hash() uint64 {
	return hashUnordered(s.Values())
}

func (s Set[T]) String() string {
	return formatSeq(s.Values())
}
