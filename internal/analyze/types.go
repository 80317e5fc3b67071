package analyze

import (
	"go/types"
	"slices"

	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "builder-generator/examples/order"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind is the structural kind of a type. For named types it is the kind
// of the underlying type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map from key to value
	TypeKindInterface          // interface type
	TypeKindFunc               // function type
	TypeKindChan               // channel type
	TypeKindTypeParam          // type parameter of a generic declaration
	TypeKindInvalid            // unresolved type (type-check error)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindFunc:
		return "func"
	case TypeKindChan:
		return "chan"
	case TypeKindTypeParam:
		return "type parameter"
	case TypeKindInvalid:
		return "invalid"
	default:
		return common.UnknownStr
	}
}

// TypeInfo is the type descriptor handed to the classifier: structural
// kind, generic arguments and enough rendering information to spell the
// type inside the generated file.
type TypeInfo struct {
	ID       TypeID      // Set for named types only
	Kind     TypeKind    // Structural kind (underlying kind for named types)
	Expr     string      // Type expression as written in the generating package
	Elem     *TypeInfo   // Pointer, slice, array and chan element; map value
	Key      *TypeInfo   // Map key
	TypeArgs []*TypeInfo // Type arguments of an instantiated generic named type
	Imports  []Import    // Packages Expr refers to
	Builder  *BuilderInfo
	GoType   types.Type // The original go/types.Type, nil for hand-built descriptors
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Is reports whether t is the named type pkgPath.name.
func (t *TypeInfo) Is(pkgPath, name string) bool {
	return t.ID.PkgPath == pkgPath && t.ID.Name == name
}

// Nullable reports whether a value of this type can be nil.
func (t *TypeInfo) Nullable() bool {
	switch t.Kind {
	case TypeKindPointer, TypeKindSlice, TypeKindMap, TypeKindInterface, TypeKindFunc, TypeKindChan:
		return true
	default:
		return false
	}
}

// IsBasic reports whether the underlying type is a basic type.
func (t *TypeInfo) IsBasic() bool {
	return t.Kind == TypeKindBasic
}

// IsEmptyStruct reports whether t is the unnamed struct{}.
func (t *TypeInfo) IsEmptyStruct() bool {
	return !t.IsNamed() && t.Kind == TypeKindStruct && t.Expr == "struct{}"
}

// AllImports returns the imports of t and of every type it mentions.
func (t *TypeInfo) AllImports() []Import {
	var out []Import

	out = append(out, t.Imports...)
	if t.Builder != nil {
		out = append(out, t.Builder.Imports...)
	}

	return slices.Compact(sortImports(out))
}

// BuilderInfo describes the builder of a nested buildable type.
type BuilderInfo struct {
	// Expr is the builder type as written in the generating package, e.g.
	// "AddressBuilder" or "geo.AddressBuilder".
	Expr string
	// Constructor is the qualified constructor, e.g. "NewAddressBuilder".
	Constructor string
	// PartialMerge is true when the builder has MergeFromBuilder.
	PartialMerge bool
	// Imports are the packages Expr and Constructor refer to.
	Imports []Import
}

// Import is a package referenced by generated code.
type Import struct {
	Name string // package name
	Path string // import path
}

func sortImports(imports []Import) []Import {
	slices.SortFunc(imports, func(a, b Import) int {
		switch {
		case a.Path < b.Path:
			return -1
		case a.Path > b.Path:
			return 1
		default:
			return 0
		}
	})

	return imports
}

// PropertyInput is one accessor of a declaration, in declaration order.
type PropertyInput struct {
	Name       string    // Accessor name, e.g. "Items"
	Type       *TypeInfo // Declared result type
	Default    string    // Go expression, valid when HasDefault
	HasDefault bool
	Imports    []Import // Packages the default expression refers to
	Doc        string
}

// TypeDecl is an interface selected for builder generation.
type TypeDecl struct {
	ID          TypeID
	PkgName     string
	Dir         string
	BuilderName string
	Properties  []PropertyInput
	// Overrides are methods the user declared on the builder type in
	// hand-written files; the generator must not emit them.
	Overrides []string
	// FileImports maps the import names of the declaring file to paths.
	FileImports map[string]string
	Doc         string
}

// Property returns the property with the given name.
func (d *TypeDecl) Property(name string) (*PropertyInput, bool) {
	for i := range d.Properties {
		if d.Properties[i].Name == name {
			return &d.Properties[i], true
		}
	}

	return nil, false
}

// TypeGraph holds the declarations found in the loaded packages.
type TypeGraph struct {
	// Decls lists the selected declarations, ordered by package then position.
	Decls []*TypeDecl
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Diagnostics collects tolerated type-check errors and declarations
	// that could not be turned into a TypeDecl.
	Diagnostics diagnostic.Diagnostics
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Packages: make(map[string]*PackageInfo),
	}
}

// Decl returns the declaration with the given ID, or nil if not found.
func (g *TypeGraph) Decl(id TypeID) *TypeDecl {
	for _, d := range g.Decls {
		if d.ID == id {
			return d
		}
	}

	return nil
}

// DeclByName returns the declaration named "Name" or "pkg.Name".
func (g *TypeGraph) DeclByName(name string) *TypeDecl {
	for _, d := range g.Decls {
		if d.ID.Name == name || d.PkgName+"."+d.ID.Name == name || d.ID.String() == name {
			return d
		}
	}

	return nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory holding the package sources
	// Interfaces lists every interface type declared in the package.
	Interfaces []string
	// UserMethods maps receiver type names to the methods declared on them
	// in files that are not generated.
	UserMethods map[string][]string
}
