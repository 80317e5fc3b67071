package gen

import (
	"text/template"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
	"builder-generator/internal/plan"
)

// importSpec is one line of the generated import block.
type importSpec struct {
	Alias string
	Path  string
}

// templateData holds everything the file template renders.
type templateData struct {
	*plan.BuilderSpec
	Imports []importSpec
}

func newTemplateData(spec *plan.BuilderSpec) *templateData {
	data := &templateData{BuilderSpec: spec}

	for _, imp := range spec.Imports {
		data.Imports = append(data.Imports, toImportSpec(imp))
	}

	return data
}

// toImportSpec aliases an import only when its package name differs from
// the last element of its path.
func toImportSpec(imp analyze.Import) importSpec {
	spec := importSpec{Path: imp.Path}
	if imp.Name != "" && imp.Name != common.PkgAlias(imp.Path) {
		spec.Alias = imp.Name
	}

	return spec
}

var builderTemplate = template.Must(template.New("builder").Parse(`// Code generated by builder-generator. DO NOT EDIT.

package {{.PkgName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.BuilderName}} builds {{.TypeName}} values. Create one with New{{.BuilderName}}.
type {{.BuilderName}} struct {
	err error
{{range .Members}}
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}{{end}}}

// New{{.BuilderName}} returns an empty builder with declared defaults applied.
func New{{.BuilderName}}() *{{.BuilderName}} {
	b := &{{.BuilderName}}{}
	b.init()

	return b
}

// init applies declared defaults.
func (b *{{.BuilderName}}) init() {
{{range .Members}}{{range .Init}}	{{.}}
{{end}}{{end}}}

// fail records err unless an earlier error is already recorded.
func (b *{{.BuilderName}}) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first error recorded by a mutator, or nil.
func (b *{{.BuilderName}}) Err() error {
	return b.err
}
{{range .Members}}{{range .Methods}}
// {{.Doc}}
func (b *{{$.BuilderName}}) {{.Emitted}}({{.Params}}) {{.Results}} {
{{range .Body}}	{{.}}
{{end}}}
{{end}}{{end}}
// MergeFrom copies every property of value into the builder. Scalars and
// present optionals overwrite, collections are added to.
func (b *{{.BuilderName}}) MergeFrom(value {{.TypeName}}) *{{.BuilderName}} {
	if fb.IsNil(value) {
		b.fail(fb.NullArgument("{{.BuilderName}}.MergeFrom", "value"))
		return b
	}
{{range .Members}}
{{range .MergeValue}}	{{.}}
{{end}}{{end}}
	return b
}

// MergeFromBuilder copies the properties set on other into the builder.
// Neither builder is built, and an error recorded by other carries over.
func (b *{{.BuilderName}}) MergeFromBuilder(other *{{.BuilderName}}) *{{.BuilderName}} {
	if other == nil {
		b.fail(fb.NullArgument("{{.BuilderName}}.MergeFromBuilder", "other"))
		return b
	}

	if other.err != nil {
		b.fail(other.err)
	}
{{range .Members}}
{{range .MergeBuilder}}	{{.}}
{{end}}{{end}}
	return b
}

// Clear resets the builder to its newly constructed state.
func (b *{{.BuilderName}}) Clear() *{{.BuilderName}} {
	*b = {{.BuilderName}}{}
	b.init()

	return b
}

// Build returns an immutable {{.TypeName}}. It fails with the first error
// recorded by a mutator, or when required properties are unset.
func (b *{{.BuilderName}}) Build() ({{.TypeName}}, error) {
	if b.err != nil {
		return nil, b.err
	}
{{if .HasRequired}}
	var unset []string
{{range .Members}}{{if .Required}}
	if {{.Unset}} {
		unset = append(unset, "{{.Property}}")
	}
{{end}}{{end}}
	if len(unset) > 0 {
		return nil, &fb.UnsetPropertiesError{Type: "{{.TypeName}}", Properties: unset}
	}
{{end}}{{range .Members}}{{if .Resolve}}
{{range .Resolve}}	{{.}}
{{end}}{{end}}{{end}}
	v := &{{.ValueName}}{}
{{range .Members}}	v.{{.ValueField.Name}} = {{.ValueExpr}}
{{end}}
	return v, nil
}

// MustBuild is like Build but panics on error.
func (b *{{.BuilderName}}) MustBuild() {{.TypeName}} {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}

	return v
}

// {{.ValueName}} is the immutable {{.TypeName}} returned by {{.BuilderName}}.
type {{.ValueName}} struct {
{{range .Members}}	{{.ValueField.Name}} {{.ValueField.Type}}
{{end}}}

var _ {{.TypeName}} = (*{{.ValueName}})(nil)
{{range .Members}}
func (v *{{$.ValueName}}) {{.Property}}() {{.Result}} {
{{range .Accessor}}	{{.}}
{{end}}}
{{end}}
// Equal reports whether other holds equal values for every property.
func (v *{{.ValueName}}) Equal(other {{.TypeName}}) bool {
	if fb.IsNil(other) {
		return false
	}

	return {{if .Members}}{{range $i, $m := .Members}}{{if $i}} &&
		{{end}}{{$m.Equal}}{{end}}{{else}}true{{end}}
}

// Hash returns a hash consistent with Equal.
func (v *{{.ValueName}}) Hash() uint64 {
	h := fb.NewHasher("{{.TypeName}}")
{{range .Members}}{{range .Hash}}	{{.}}
{{end}}{{end}}
	return h.Sum64()
}

// String renders the properties in declaration order.
func (v *{{.ValueName}}) String() string {
	parts := make([]string, 0, {{len .Members}})
{{range .Members}}{{range .Format}}	{{.}}
{{end}}{{end}}
	return "{{.TypeName}}{" + strings.Join(parts, ", ") + "}"
}

// ToBuilder returns a new builder holding the properties of v.
func (v *{{.ValueName}}) ToBuilder() *{{.BuilderName}} {
	return New{{.BuilderName}}().MergeFrom(v)
}
`))
