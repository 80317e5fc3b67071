package fb

import (
	"iter"
	"strings"
)

// Map is an immutable map that iterates in key insertion order. Equality
// ignores order. The zero value is empty.
type Map[K comparable, V any] struct {
	m *OrderedMap[K, V]
}

// MapFrom collects seq into a Map; a later duplicate key overwrites an
// earlier one.
func MapFrom[K comparable, V any](seq iter.Seq2[K, V]) Map[K, V] {
	m := &OrderedMap[K, V]{}
	for k, v := range seq {
		m.Put(k, v)
	}

	return Map[K, V]{m: m}
}

func (m Map[K, V]) Len() int {
	if m.m == nil {
		return 0
	}

	return m.m.Len()
}

func (m Map[K, V]) Get(k K) (V, bool) {
	if m.m == nil {
		var zero V
		return zero, false
	}

	return m.m.Get(k)
}

func (m Map[K, V]) All() iter.Seq2[K, V] {
	if m.m == nil {
		return func(func(K, V) bool) {}
	}

	return m.m.All()
}

func (m Map[K, V]) Keys() iter.Seq[K] {
	if m.m == nil {
		return func(func(K) bool) {}
	}

	return m.m.Keys()
}

// ToMap returns a copy as a Go map.
func (m Map[K, V]) ToMap() map[K]V {
	if m.m == nil {
		return map[K]V{}
	}

	return m.m.ToMap()
}

func (m Map[K, V]) Put(K, V) error {
	return unsupported("Map.Put")
}

func (m Map[K, V]) Remove(K) error {
	return unsupported("Map.Remove")
}

func (m Map[K, V]) Clear() error {
	return unsupported("Map.Clear")
}

// Equal reports whether both maps hold equal values under the same keys.
func (m Map[K, V]) Equal(other Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}

	for k, v := range m.All() {
		ov, ok := other.Get(k)
		if !ok || !Equal(v, ov) {
			return false
		}
	}

	return true
}

// Hash is consistent with Equal.
func (m Map[K, V]) Hash() uint64 {
	return hashEntries(m.All())
}

func (m Map[K, V]) String() string {
	return formatEntries(m.All())
}

func formatEntries[K comparable, V any](seq iter.Seq2[K, V]) string {
	var sb strings.Builder

	sb.WriteString("{")

	first := true
	for k, v := range seq {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		sb.WriteString(Format(k))
		sb.WriteString("=")
		sb.WriteString(Format(v))
	}

	sb.WriteString("}")

	return sb.String()
}
