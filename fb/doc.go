// Package fb is the runtime support library imported by code that
// builder-generator emits.
//
// Generated builders store collection properties in the mutable containers
// of this package (a plain slice, OrderedSet, OrderedMap) and expose them
// through live read-only views (ListView, SetView, MapView). Built values
// hold the immutable shapes List, Set, Map and Optional.
//
// Key pieces:
//   - Optional: a present-or-absent single value
//   - List, Set, Map: immutable insertion-ordered containers
//   - OrderedSet, OrderedMap: builder storage, mutated in place
//   - ListView, SetView, MapView: read-only views that reflect later mutation
//   - Equal, Hasher, Format: structural equality, hashing and rendering
//   - NullArgumentError, UnsetPropertiesError: errors reported by builders
package fb
