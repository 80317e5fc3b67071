package plan

import (
	"fmt"

	"builder-generator/internal/analyze"
)

// FieldSpec is a struct field of the builder or of the value type.
type FieldSpec struct {
	Name string
	Type string
}

// MethodSpec is a builder method. Body holds Go statements, one per line.
type MethodSpec struct {
	// Name is the public name of the method.
	Name string
	// Emitted is the name the method is emitted under. It differs from Name
	// when the user declared Name on the builder.
	Emitted string
	Doc     string
	Params  string
	Results string
	Body    []string
}

// Overridden reports whether the user supplies Name.
func (m MethodSpec) Overridden() bool {
	return m.Emitted != m.Name
}

// BuilderMemberSpec is everything one property contributes to the
// generated file. Statements run with the builder bound to b, the merged
// value to value, the merged builder to other and the built value to v.
type BuilderMemberSpec struct {
	Property string
	Kind     PropertyKind
	// Fields are the builder storage fields.
	Fields  []FieldSpec
	Methods []MethodSpec
	// Init applies the property's default; it runs in the constructor and
	// in Clear.
	Init []string
	// MergeValue and MergeBuilder are the bodies contributed to MergeFrom
	// and MergeFromBuilder.
	MergeValue   []string
	MergeBuilder []string
	// Resolve runs in Build before the value is constructed.
	Resolve []string
	// ValueField is the field of the value type and ValueExpr the
	// expression it is initialized with in Build.
	ValueField FieldSpec
	ValueExpr  string
	// Result is the declared type, returned by the value accessor.
	Result string
	// Accessor is the body of the value accessor.
	Accessor []string
	// Equal is a boolean expression comparing v with other.
	Equal string
	// Hash and Format are the statements contributed to Hash and String.
	Hash   []string
	Format []string
	// Default is the declared default expression, if any.
	Default  string
	Required bool
	// Unset is the condition under which a required property is unset.
	Unset string
	// Overridable lists the generated method names users may declare.
	Overridable []string
	Imports     []analyze.Import
}

// Owner describes the builder a member is generated into.
type Owner struct {
	TypeName    string
	BuilderName string
	// Overrides is the set of methods the user declared on the builder.
	Overrides map[string]bool
}

// method creates a MethodSpec, renaming it when the user declared it.
func (o Owner) method(name, doc, params, results string, body ...string) MethodSpec {
	m := MethodSpec{
		Name:    name,
		Emitted: name,
		Doc:     doc,
		Params:  params,
		Results: results,
		Body:    body,
	}

	if o.Overrides[name] {
		m.Emitted = overriddenName(name)
		m.Doc = fmt.Sprintf("%s is the generated implementation of %s.", m.Emitted, name)
	}

	return m
}

// qualified is the method name used in error messages.
func (o Owner) qualified(method string) string {
	return qualified(o.BuilderName, method)
}

// self is the fluent result type of builder mutators.
func (o Owner) self() string {
	return "*" + o.BuilderName
}

// nullCheck returns statements that record a NullArgumentError and return
// when expr is nil.
func (o Owner) nullCheck(method, expr, param string) []string {
	return []string{
		fmt.Sprintf("if fb.IsNil(%s) {", expr),
		fmt.Sprintf("\tb.fail(fb.NullArgument(%q, %q))", o.qualified(method), param),
		"\treturn b",
		"}",
	}
}

// Strategy emits the builder members of one property kind.
type Strategy interface {
	Members(d PropertyDescriptor, o Owner) BuilderMemberSpec
}

// strategies is the per-kind strategy table.
var strategies = map[PropertyKind]Strategy{
	KindScalar:          scalarStrategy{},
	KindOptional:        optionalStrategy{},
	KindList:            listStrategy{},
	KindSet:             setStrategy{},
	KindMap:             mapStrategy{},
	KindNestedBuildable: nestedStrategy{},
}

// StrategyFor returns the strategy of a kind.
func StrategyFor(kind PropertyKind) (Strategy, error) {
	s, ok := strategies[kind]
	if !ok {
		return nil, fmt.Errorf("no strategy for kind %s", kind)
	}

	return s, nil
}

// baseMember fills the parts every kind shares.
func baseMember(d PropertyDescriptor) BuilderMemberSpec {
	return BuilderMemberSpec{
		Property:   d.Name,
		Kind:       d.Kind,
		ValueField: FieldSpec{Name: d.Field, Type: d.TypeExpr()},
		ValueExpr:  "b." + d.Field,
		Result:     d.TypeExpr(),
		Accessor:   []string{"return v." + d.Field},
		Equal:      fmt.Sprintf("fb.Equal(v.%s, other.%s())", d.Field, d.Name),
		Hash:       []string{fmt.Sprintf("h.Add(v.%s)", d.Field)},
		Format:     []string{fmt.Sprintf("parts = append(parts, %q+fb.Format(v.%s))", d.Name+"=", d.Field)},
		Default:    d.Default,
		Imports:    d.imports(),
	}
}

func overridable(methods []MethodSpec) []string {
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name)
	}

	return names
}

// join concatenates statement groups.
func join(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}
