package plan

import (
	"errors"
	"fmt"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
)

// RuntimePkgPath is the import path of the runtime library generated code
// depends on.
const RuntimePkgPath = "builder-generator/fb"

// ClassificationError reports a property whose type no strategy can handle.
type ClassificationError struct {
	Property string
	Reason   string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("property %s: %s", e.Property, e.Reason)
}

// ErrUnsupportedType is matched by every ClassificationError.
var ErrUnsupportedType = errors.New("unsupported property type")

// Is reports whether target is ErrUnsupportedType.
func (e *ClassificationError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// shapeRule is one row of the shape table. match reports whether the
// declared type has the shape and, if so, fills in the descriptor.
type shapeRule struct {
	name  string
	match func(t *analyze.TypeInfo, d *PropertyDescriptor) bool
}

// shapeTable is consulted in order; the first match wins. Shapes are
// matched on the declared type itself, never on a named type's underlying
// type, so container shapes only match their exact spelling.
var shapeTable = []shapeRule{
	{"fb.Optional[T]", func(t *analyze.TypeInfo, d *PropertyDescriptor) bool {
		if !isRuntime(t, "Optional", 1) {
			return false
		}

		d.Kind, d.Form, d.Elem = KindOptional, FormRuntime, t.TypeArgs[0]

		return true
	}},
	{"*T", func(t *analyze.TypeInfo, d *PropertyDescriptor) bool {
		if t.IsNamed() || t.Kind != analyze.TypeKindPointer {
			return false
		}

		d.Kind, d.Form, d.Elem = KindOptional, FormBuiltin, t.Elem

		return true
	}},
	{"[]T", func(t *analyze.TypeInfo, d *PropertyDescriptor) bool {
		if t.IsNamed() || t.Kind != analyze.TypeKindSlice {
			return false
		}

		d.Kind, d.Form, d.Elem = KindList, FormBuiltin, t.Elem

		return true
	}},
	{"fb.List[T]", func(t *analyze.TypeInfo, d *PropertyDescriptor) bool {
		if !isRuntime(t, "List", 1) {
			return false
		}

		d.Kind, d.Form, d.Elem = KindList, FormRuntime, t.TypeArgs[0]

		return true
	}},
	{"fb.Set[T]", func(t *analyze.TypeInfo, d *PropertyDescriptor) bool {
		if !isRuntime(t, "Set", 1) {
			return false
		}

		d.Kind, d.Form, d.Elem = KindSet, FormRuntime, t.TypeArgs[0]

		return true
	}},
	{"map[T]struct{}", func(t *analyze.TypeInfo, d *PropertyDescriptor) bool {
		if t.IsNamed() || t.Kind != analyze.TypeKindMap || t.Elem == nil || !t.Elem.IsEmptyStruct() {
			return false
		}

		d.Kind, d.Form, d.Elem = KindSet, FormBuiltin, t.Key

		return true
	}},
	{"map[K]V", func(t *analyze.TypeInfo, d *PropertyDescriptor) bool {
		if t.IsNamed() || t.Kind != analyze.TypeKindMap {
			return false
		}

		d.Kind, d.Form, d.Key, d.Elem = KindMap, FormBuiltin, t.Key, t.Elem

		return true
	}},
	{"fb.Map[K, V]", func(t *analyze.TypeInfo, d *PropertyDescriptor) bool {
		if !isRuntime(t, "Map", 2) {
			return false
		}

		d.Kind, d.Form, d.Key, d.Elem = KindMap, FormRuntime, t.TypeArgs[0], t.TypeArgs[1]

		return true
	}},
	{"buildable", func(t *analyze.TypeInfo, d *PropertyDescriptor) bool {
		if !t.IsNamed() || t.Builder == nil {
			return false
		}

		d.Kind = KindNestedBuildable

		return true
	}},
}

func isRuntime(t *analyze.TypeInfo, name string, args int) bool {
	return t.Is(RuntimePkgPath, name) && len(t.TypeArgs) == args
}

// Classify maps a declared property to its kind and resolved element types.
// Anything not matched by the shape table is a Scalar.
func Classify(in analyze.PropertyInput) (PropertyDescriptor, error) {
	d := PropertyDescriptor{
		Name:       in.Name,
		Field:      FieldName(in.Name),
		Kind:       KindScalar,
		Type:       in.Type,
		Default:    in.Default,
		HasDefault: in.HasDefault,
		Imports:    in.Imports,
		Doc:        in.Doc,
	}

	if err := checkResolved(in.Name, in.Type, "type"); err != nil {
		return d, err
	}

	if _, reserved := reservedNames[in.Name]; reserved {
		return d, &ClassificationError{
			Property: in.Name,
			Reason:   "name collides with a builder method",
		}
	}

	for _, rule := range shapeTable {
		if rule.match(in.Type, &d) {
			break
		}
	}

	for _, arg := range []*analyze.TypeInfo{d.Elem, d.Key} {
		if arg == nil {
			continue
		}

		if err := checkResolved(in.Name, arg, "container argument"); err != nil {
			return d, err
		}
	}

	// Set membership uses ==, which for pointers is identity.
	if d.Kind == KindSet && d.Elem.Kind == analyze.TypeKindPointer {
		return d, &ClassificationError{
			Property: in.Name,
			Reason:   fmt.Sprintf("set element %s is a pointer, sets compare elements by value", d.Elem.Expr),
		}
	}

	if d.HasDefault && d.Kind != KindScalar && d.Kind != KindNestedBuildable {
		return d, &ClassificationError{
			Property: in.Name,
			Reason:   fmt.Sprintf("defaults are not supported for %s properties", d.Kind),
		}
	}

	d.Required = d.Kind == KindScalar && !d.HasDefault && !in.Type.IsBasic()

	return d, nil
}

func checkResolved(property string, t *analyze.TypeInfo, what string) error {
	switch {
	case t == nil || t.Kind == analyze.TypeKindInvalid || t.Kind == analyze.TypeKindUnknown:
		expr := "<nil>"
		if t != nil {
			expr = t.Expr
		}

		return &ClassificationError{Property: property, Reason: fmt.Sprintf("unresolved %s %s", what, expr)}
	case t.Kind == analyze.TypeKindTypeParam:
		return &ClassificationError{
			Property: property,
			Reason:   fmt.Sprintf("%s %s is a type parameter", what, t.Expr),
		}
	default:
		return nil
	}
}

// FieldName returns the storage field name of a property.
func FieldName(property string) string {
	name := common.LowerFirst(property)
	if common.IsGoKeyword(name) {
		return name + "_"
	}

	return name
}
