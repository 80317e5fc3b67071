package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

func orderDecl() *analyze.TypeDecl {
	timeType := named("time", "Time", analyze.TypeKindStruct, "time.Time")
	timeType.Imports = []analyze.Import{{Name: "time", Path: "time"}}

	return decl("Order",
		prop("ID", basic("int64")),
		prop("Placed", timeType),
		prop("Note", pointer(basic("string"))),
		prop("Items", slice(basic("string"))),
		prop("Tags", runtimeType("Set", basic("string"))),
		prop("Attributes", mapOf(basic("string"), basic("string"))),
		prop("Shipping", buildable("Address", true)),
		prop("Total", named(testPkg, "Total", analyze.TypeKindStruct, "Total")),
	)
}

func TestPlan_Order(t *testing.T) {
	var diags diagnostic.Diagnostics

	spec, err := Plan(orderDecl(), &diags)
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.False(t, diags.HasErrors())

	assert.Equal(t, "Order", spec.TypeName)
	assert.Equal(t, "OrderBuilder", spec.BuilderName)
	assert.Equal(t, "orderValue", spec.ValueName)
	assert.Equal(t, "order", spec.PkgName)

	var props []string
	for _, m := range spec.Members {
		props = append(props, m.Property)
	}

	assert.Equal(t, []string{"ID", "Placed", "Note", "Items", "Tags", "Attributes", "Shipping", "Total"}, props)
	assert.Equal(t, []string{"Placed", "Total"}, spec.Required, "required properties keep declaration order")
	assert.True(t, spec.HasRequired())

	var paths []string
	for _, imp := range spec.Imports {
		paths = append(paths, imp.Path)
	}

	assert.Equal(t, []string{RuntimePkgPath, "iter", "maps", "slices", "strings", "time"}, paths)

	shipping, ok := spec.Member("Shipping")
	require.True(t, ok)
	assert.Equal(t, KindNestedBuildable, shipping.Kind)
}

func TestPlan_ReportsEveryUnsupportedProperty(t *testing.T) {
	typeParam := &analyze.TypeInfo{Kind: analyze.TypeKindTypeParam, Expr: "T"}
	invalid := &analyze.TypeInfo{Kind: analyze.TypeKindInvalid, Expr: "invalid type"}

	d := decl("Broken",
		prop("Good", basic("int")),
		prop("Generic", typeParam),
		prop("Missing", invalid),
		prop("Clear", basic("bool")),
	)

	var diags diagnostic.Diagnostics

	spec, err := Plan(d, &diags)
	require.Error(t, err)
	assert.Nil(t, spec)

	assert.Len(t, multierr.Errors(errors.Unwrap(err)), 3)
	assert.True(t, errors.Is(err, ErrUnsupportedType))

	require.Len(t, diags.Errors, 3)
	assert.Equal(t, "Generic", diags.Errors[0].Property)
	assert.Equal(t, diagnostic.CodeUnsupportedType, diags.Errors[0].Code)
	assert.Equal(t, "Missing", diags.Errors[1].Property)
	assert.Equal(t, "Clear", diags.Errors[2].Property)
	assert.Equal(t, diagnostic.CodeReservedName, diags.Errors[2].Code)
	assert.Equal(t, "Broken", diags.Errors[2].TypeName)
}

func TestPlan_Overrides(t *testing.T) {
	d := decl("Muted",
		prop("Items", slice(basic("int"))),
		prop("Tags", runtimeType("Set", basic("string"))),
	)
	d.Overrides = []string{"AddItems", "ClearTags", "describe"}

	var diags diagnostic.Diagnostics

	spec, err := Plan(d, &diags)
	require.NoError(t, err)

	items, _ := spec.Member("Items")
	add, _ := findMethod(*items, "AddItems")
	assert.Equal(t, "addItems", add.Emitted)

	tags, _ := spec.Member("Tags")
	clear, _ := findMethod(*tags, "ClearTags")
	assert.Equal(t, "clearTags", clear.Emitted)

	require.Len(t, diags.Infos, 2)
	assert.Equal(t, diagnostic.CodeOverride, diags.Infos[0].Code)
}

func TestPlan_NameConflicts(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		props     []analyze.PropertyInput
		conflict  string
	}{
		{
			name:      "user declares a builder-level method",
			overrides: []string{"MergeFrom"},
			props:     []analyze.PropertyInput{prop("Items", slice(basic("int")))},
			conflict:  "MergeFrom (builder and user method)",
		},
		{
			name:     "property field collides with helper",
			props:    []analyze.PropertyInput{prop("Init", basic("int"))},
			conflict: "init (builder and Init)",
		},
		{
			name:      "user declares the renamed default",
			overrides: []string{"AddItems", "addItems"},
			props:     []analyze.PropertyInput{prop("Items", slice(basic("int")))},
			conflict:  "addItems (Items and user method)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decl("Order", tt.props...)
			d.Overrides = tt.overrides

			var diags diagnostic.Diagnostics

			_, err := Plan(d, &diags)
			require.Error(t, err)

			var conflict *ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Contains(t, conflict.Names, tt.conflict)

			require.NotEmpty(t, diags.Errors)
			assert.Equal(t, diagnostic.CodeNameConflict, diags.Errors[0].Code)
		})
	}
}

func TestPlan_NilReporter(t *testing.T) {
	spec, err := Plan(decl("Empty"), nil)
	require.NoError(t, err)
	assert.Empty(t, spec.Members)
	assert.False(t, spec.HasRequired())
}
