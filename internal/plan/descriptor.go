package plan

import (
	"builder-generator/internal/analyze"
)

// Form tells which of the two accepted spellings a container or optional
// property was declared with.
type Form int

const (
	// FormBuiltin is the language spelling: *T, []T, map[T]struct{}, map[K]V.
	FormBuiltin Form = iota
	// FormRuntime is the runtime library spelling: fb.Optional[T], fb.List[T],
	// fb.Set[T], fb.Map[K, V].
	FormRuntime
)

// PropertyDescriptor is a classified property: everything the per-kind
// strategies need to emit its builder members.
type PropertyDescriptor struct {
	// Name is the accessor name, e.g. "Items".
	Name string
	// Field is the storage field name, e.g. "items".
	Field string
	Kind  PropertyKind
	Form  Form
	// Type is the declared result type.
	Type *analyze.TypeInfo
	// Elem is the element type of Optional, List and Set properties and the
	// value type of Map properties.
	Elem *analyze.TypeInfo
	// Key is the key type of Map properties.
	Key        *analyze.TypeInfo
	Default    string
	HasDefault bool
	// Required is true for scalars that have neither a zero default nor a
	// declared one.
	Required bool
	// Construction is set for NestedBuildable properties.
	Construction Construction
	// Imports are the packages the default expression refers to.
	Imports []analyze.Import
	Doc     string
}

// TypeExpr is the declared type as spelled in the generated file.
func (d *PropertyDescriptor) TypeExpr() string {
	return d.Type.Expr
}

// ElemExpr is the element (or map value) type as spelled in the generated file.
func (d *PropertyDescriptor) ElemExpr() string {
	return d.Elem.Expr
}

// KeyExpr is the map key type as spelled in the generated file.
func (d *PropertyDescriptor) KeyExpr() string {
	return d.Key.Expr
}

// imports lists every package the members of this property refer to.
func (d *PropertyDescriptor) imports() []analyze.Import {
	out := append([]analyze.Import(nil), d.Imports...)
	out = append(out, d.Type.AllImports()...)

	for _, t := range []*analyze.TypeInfo{d.Elem, d.Key} {
		if t != nil {
			out = append(out, t.AllImports()...)
		}
	}

	return out
}
