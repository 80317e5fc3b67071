// Package analyze provides package loading and declaration discovery.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find the
// interfaces builders are generated for, and describes each of their
// accessors with a structural type descriptor.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: structural kind, element/key/argument types, builder contract
//   - TypeDecl: a selected interface with its ordered properties and the
//     builder methods the user declared by hand
package analyze
