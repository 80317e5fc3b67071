// Package gen renders planned builders into Go source files.
//
// Generation uses text/template + go/format. Each declaration produces one
// file, named after the snake_case type name plus a suffix, holding:
//   - the builder type, its constructor and the per-property mutators
//   - MergeFrom, MergeFromBuilder, Clear, Build and MustBuild
//   - the unexported immutable value type with its accessors, Equal, Hash,
//     String and ToBuilder
//
// GenerateAll plans and renders declarations concurrently with a bounded
// worker pool; its output is deterministic regardless of scheduling.
package gen
