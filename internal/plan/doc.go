// Package plan turns an analyzed declaration into a BuilderSpec, the
// complete description of one generated builder file.
//
// Planning runs in three steps:
//  1. Classify maps every property to a PropertyDescriptor with one of the
//     six kinds (scalar, optional, list, set, map, nested buildable).
//  2. The strategy of each kind emits the builder members: storage fields,
//     mutators, merge contributions and the value type's accessor, equality,
//     hash and format parts.
//  3. Compose assembles the members, detects name conflicts and collects
//     imports.
//
// Methods the user declares on the builder are honored by emitting the
// generated implementation under an unexported name.
package plan
