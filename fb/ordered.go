package fb

import (
	"iter"
	"slices"
)

// OrderedSet is the mutable storage behind set properties. It keeps the
// first-insertion order of its elements and ignores duplicates. The zero
// value is an empty set ready to use.
type OrderedSet[T comparable] struct {
	index map[T]struct{}
	order []T
}

// Add inserts v unless it is already present. It reports whether the set
// changed.
func (s *OrderedSet[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}

	if s.index == nil {
		s.index = make(map[T]struct{})
	}

	s.index[v] = struct{}{}
	s.order = append(s.order, v)

	return true
}

// Remove deletes v. It reports whether v was present.
func (s *OrderedSet[T]) Remove(v T) bool {
	if _, ok := s.index[v]; !ok {
		return false
	}

	delete(s.index, v)
	s.order = slices.DeleteFunc(s.order, func(item T) bool { return item == v })

	return true
}

// Contains reports whether v is present.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int {
	return len(s.order)
}

// Clear removes every element.
func (s *OrderedSet[T]) Clear() {
	s.index = nil
	s.order = nil
}

// Values iterates the elements in insertion order.
func (s *OrderedSet[T]) Values() iter.Seq[T] {
	return slices.Values(s.order)
}

// Slice returns a copy of the elements in insertion order.
func (s *OrderedSet[T]) Slice() []T {
	return slices.Clone(s.order)
}

// ToMap copies the elements into a Go set.
func (s *OrderedSet[T]) ToMap() map[T]struct{} {
	m := make(map[T]struct{}, len(s.order))
	for _, v := range s.order {
		m[v] = struct{}{}
	}

	return m
}

// Freeze copies the elements into an immutable Set.
func (s *OrderedSet[T]) Freeze() Set[T] {
	return SetOf(s.order...)
}

// OrderedMap is the mutable storage behind map properties. Iteration follows
// key insertion order; overwriting a key keeps its original position. The
// zero value is an empty map ready to use.
type OrderedMap[K comparable, V any] struct {
	entries map[K]V
	keys    []K
}

// Put associates v with k.
func (m *OrderedMap[K, V]) Put(k K, v V) {
	if m.entries == nil {
		m.entries = make(map[K]V)
	}

	if _, ok := m.entries[k]; !ok {
		m.keys = append(m.keys, k)
	}

	m.entries[k] = v
}

// Get returns the value for k and whether it is present.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

// Remove deletes k. It reports whether k was present.
func (m *OrderedMap[K, V]) Remove(k K) bool {
	if _, ok := m.entries[k]; !ok {
		return false
	}

	delete(m.entries, k)
	m.keys = slices.DeleteFunc(m.keys, func(key K) bool { return key == k })

	return true
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Clear removes every entry.
func (m *OrderedMap[K, V]) Clear() {
	m.entries = nil
	m.keys = nil
}

// All iterates the entries in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Keys iterates the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() iter.Seq[K] {
	return slices.Values(m.keys)
}

// ToMap copies the entries into a Go map.
func (m *OrderedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.entries[k]
	}

	return out
}

// Freeze copies the entries into an immutable Map.
func (m *OrderedMap[K, V]) Freeze() Map[K, V] {
	return MapFrom(m.All())
}
