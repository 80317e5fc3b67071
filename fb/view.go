package fb

import (
	"iter"
	"slices"
)

// ListView is a read-only view of a builder's list storage. It reflects
// every later mutation of that storage without being fetched again.
type ListView[T any] struct {
	items *[]T
}

// NewListView returns a view backed by items.
func NewListView[T any](items *[]T) ListView[T] {
	return ListView[T]{items: items}
}

func (v ListView[T]) Len() int {
	return len(*v.items)
}

// At returns the element at index i. It panics when i is out of range.
func (v ListView[T]) At(i int) T {
	return (*v.items)[i]
}

func (v ListView[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range *v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (v ListView[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range *v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Slice returns a snapshot copy of the current elements.
func (v ListView[T]) Slice() []T {
	return slices.Clone(*v.items)
}

func (v ListView[T]) Add(T) error {
	return unsupported("ListView.Add")
}

func (v ListView[T]) Clear() error {
	return unsupported("ListView.Clear")
}

func (v ListView[T]) String() string {
	return formatSeq(v.Values())
}

// SetView is a read-only view of a builder's set storage.
type SetView[T comparable] struct {
	s *OrderedSet[T]
}

// NewSetView returns a view backed by s.
func NewSetView[T comparable](s *OrderedSet[T]) SetView[T] {
	return SetView[T]{s: s}
}

func (v SetView[T]) Len() int {
	return v.s.Len()
}

func (v SetView[T]) Contains(item T) bool {
	return v.s.Contains(item)
}

func (v SetView[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.s.order {
			if !yield(item) {
				return
			}
		}
	}
}

// Slice returns a snapshot copy of the current elements.
func (v SetView[T]) Slice() []T {
	return v.s.Slice()
}

func (v SetView[T]) Add(T) error {
	return unsupported("SetView.Add")
}

func (v SetView[T]) Remove(T) error {
	return unsupported("SetView.Remove")
}

func (v SetView[T]) Clear() error {
	return unsupported("SetView.Clear")
}

func (v SetView[T]) String() string {
	return formatSeq(v.Values())
}

// MapView is a read-only view of a builder's map storage.
type MapView[K comparable, V any] struct {
	m *OrderedMap[K, V]
}

// NewMapView returns a view backed by m.
func NewMapView[K comparable, V any](m *OrderedMap[K, V]) MapView[K, V] {
	return MapView[K, V]{m: m}
}

func (v MapView[K, V]) Len() int {
	return v.m.Len()
}

func (v MapView[K, V]) Get(k K) (V, bool) {
	return v.m.Get(k)
}

func (v MapView[K, V]) All() iter.Seq2[K, V] {
	return v.m.All()
}

func (v MapView[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range v.m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// ToMap returns a snapshot copy as a Go map.
func (v MapView[K, V]) ToMap() map[K]V {
	return v.m.ToMap()
}

func (v MapView[K, V]) Put(K, V) error {
	return unsupported("MapView.Put")
}

func (v MapView[K, V]) Remove(K) error {
	return unsupported("MapView.Remove")
}

func (v MapView[K, V]) Clear() error {
	return unsupported("MapView.Clear")
}

func (v MapView[K, V]) String() string {
	return formatEntries(v.m.All())
}
