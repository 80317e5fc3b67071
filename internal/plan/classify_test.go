package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/analyze"
)

func TestClassify_ShapeTable(t *testing.T) {
	str := basic("string")
	integer := basic("int")
	timeType := named("time", "Time", analyze.TypeKindStruct, "time.Time")

	tests := []struct {
		name string
		typ  *analyze.TypeInfo
		kind PropertyKind
		form Form
		elem string
		key  string
	}{
		{"basic", str, KindScalar, FormBuiltin, "", ""},
		{"named struct", timeType, KindScalar, FormBuiltin, "", ""},
		{"pointer", pointer(str), KindOptional, FormBuiltin, "string", ""},
		{"runtime optional", runtimeType("Optional", integer), KindOptional, FormRuntime, "int", ""},
		{"slice", slice(str), KindList, FormBuiltin, "string", ""},
		{"runtime list", runtimeType("List", str), KindList, FormRuntime, "string", ""},
		{"runtime set", runtimeType("Set", str), KindSet, FormRuntime, "string", ""},
		{"map set", mapOf(integer, emptyStruct()), KindSet, FormBuiltin, "int", ""},
		{"map", mapOf(str, str), KindMap, FormBuiltin, "string", "string"},
		{"runtime map", runtimeType("Map", str, integer), KindMap, FormRuntime, "int", "string"},
		{"buildable", buildable("Address", true), KindNestedBuildable, FormBuiltin, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Classify(prop("P", tt.typ))
			require.NoError(t, err)

			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.form, d.Form)

			if tt.elem != "" {
				require.NotNil(t, d.Elem)
				assert.Equal(t, tt.elem, d.ElemExpr())
			}

			if tt.key != "" {
				require.NotNil(t, d.Key)
				assert.Equal(t, tt.key, d.KeyExpr())
			}
		})
	}
}

func TestClassify_NamedContainerIsScalar(t *testing.T) {
	tags := named(testPkg, "Tags", analyze.TypeKindSlice, "Tags")

	d, err := Classify(prop("Tags", tags))
	require.NoError(t, err)
	assert.Equal(t, KindScalar, d.Kind)
	assert.True(t, d.Required)
}

func TestClassify_ContainerWinsOverBuildable(t *testing.T) {
	d, err := Classify(prop("Shipments", slice(buildable("Address", true))))
	require.NoError(t, err)
	assert.Equal(t, KindList, d.Kind)
}

func TestClassify_Required(t *testing.T) {
	timeType := named("time", "Time", analyze.TypeKindStruct, "time.Time")

	tests := []struct {
		name     string
		in       analyze.PropertyInput
		required bool
	}{
		{"basic defaults to zero", prop("Count", basic("int")), false},
		{"named basic defaults to zero", prop("Status", named(testPkg, "Status", analyze.TypeKindBasic, "Status")), false},
		{"struct without default", prop("Placed", timeType), true},
		{"struct with default", analyze.PropertyInput{Name: "Placed", Type: timeType, Default: "time.Unix(0, 0)", HasDefault: true}, false},
		{"optional", prop("Note", pointer(basic("string"))), false},
		{"list", prop("Items", slice(basic("string"))), false},
		{"nested", prop("Shipping", buildable("Address", true)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Classify(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.required, d.Required)
		})
	}
}

func TestClassify_Errors(t *testing.T) {
	typeParam := &analyze.TypeInfo{Kind: analyze.TypeKindTypeParam, Expr: "T"}
	invalid := &analyze.TypeInfo{Kind: analyze.TypeKindInvalid, Expr: "invalid type"}

	tests := []struct {
		name   string
		in     analyze.PropertyInput
		reason string
	}{
		{"nil type", prop("P", nil), "unresolved type"},
		{"invalid type", prop("P", invalid), "unresolved type invalid type"},
		{"type parameter", prop("P", typeParam), "type T is a type parameter"},
		{"list of type parameter", prop("P", slice(typeParam)), "container argument T is a type parameter"},
		{"map of invalid", prop("P", mapOf(basic("string"), invalid)), "unresolved container argument"},
		{"reserved name", prop("Build", basic("int")), "collides with a builder method"},
		{"default on list", analyze.PropertyInput{Name: "Items", Type: slice(basic("int")), Default: "nil", HasDefault: true}, "defaults are not supported for List"},
		{"set of pointers", prop("Tags", runtimeType("Set", pointer(basic("string")))), "set element *string is a pointer"},
		{"map set of pointers", prop("Codes", mapOf(pointer(basic("int")), emptyStruct())), "set element *int is a pointer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedType))
			assert.Contains(t, err.Error(), tt.reason)
			assert.Contains(t, err.Error(), "property "+tt.in.Name)
		})
	}
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "items", FieldName("Items"))
	assert.Equal(t, "id", FieldName("ID"))
	assert.Equal(t, "type_", FieldName("Type"))
	assert.Equal(t, "range_", FieldName("Range"))
}

func TestPropertyKind_String(t *testing.T) {
	assert.Equal(t, "Scalar", KindScalar.String())
	assert.Equal(t, "NestedBuildable", KindNestedBuildable.String())
	assert.Equal(t, "PropertyKind(42)", PropertyKind(42).String())
	assert.True(t, KindSet.IsCollection())
	assert.False(t, KindOptional.IsCollection())
}
