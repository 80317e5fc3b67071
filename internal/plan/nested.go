package plan

import (
	"fmt"
)

// nestedStrategy stores either a built value or an in-progress builder of
// another buildable type, never both.
type nestedStrategy struct{}

func (nestedStrategy) Members(d PropertyDescriptor, o Owner) BuilderMemberSpec {
	m := baseMember(d)
	f, bf := d.Field, d.Field+"Builder"
	info := d.Type.Builder
	wrap := fmt.Sprintf("fb.WrapProperty(%q, %q, err)", o.TypeName, d.Name)

	m.Fields = []FieldSpec{
		{Name: f, Type: d.TypeExpr()},
		{Name: bf, Type: "*" + info.Expr},
	}

	// mergeInto merges expr, a built value, into whatever the builder holds.
	mergeInto := func(expr, indent string) []string {
		return []string{
			indent + fmt.Sprintf("if b.%s == nil && b.%s == nil {", f, bf),
			indent + fmt.Sprintf("\tb.%s(%s)", setter(d.Name), expr),
			indent + "} else {",
			indent + fmt.Sprintf("\tb.%s().MergeFrom(%s)", builderGetter(d.Name), expr),
			indent + "}",
		}
	}

	var store []string
	if d.Construction.PartialMerge {
		store = []string{
			fmt.Sprintf("nested := %s()", info.Constructor),
			"nested.MergeFromBuilder(builder)",
			fmt.Sprintf("b.%s = nil", f),
			fmt.Sprintf("b.%s = nested", bf),
			"return b",
		}
	} else {
		store = []string{
			"value, err := builder.Build()",
			"if err != nil {",
			fmt.Sprintf("\tb.fail(%s)", wrap),
			"\treturn b",
			"}",
			fmt.Sprintf("b.%s = value", f),
			fmt.Sprintf("b.%s = nil", bf),
			"return b",
		}
	}

	m.Methods = []MethodSpec{
		o.method(setter(d.Name),
			fmt.Sprintf("%s sets %s, discarding any builder obtained for it.", setter(d.Name), d.Name),
			"value "+d.TypeExpr(), o.self(),
			join(o.nullCheck(setter(d.Name), "value", "value"), []string{
				fmt.Sprintf("b.%s = value", f),
				fmt.Sprintf("b.%s = nil", bf),
				"return b",
			})...),
		o.method(builderSetter(d.Name),
			fmt.Sprintf("%s sets %s from a copy of builder. Later changes to builder are not observed.",
				builderSetter(d.Name), d.Name),
			"builder *"+info.Expr, o.self(),
			join([]string{
				"if builder == nil {",
				fmt.Sprintf("\tb.fail(fb.NullArgument(%q, %q))", o.qualified(builderSetter(d.Name)), "builder"),
				"\treturn b",
				"}",
			}, store)...),
		o.method(builderGetter(d.Name),
			fmt.Sprintf("%s returns the builder of %s, creating it on first use. A value set earlier is copied into it.",
				builderGetter(d.Name), d.Name),
			"", "*"+info.Expr,
			fmt.Sprintf("if b.%s == nil {", bf),
			fmt.Sprintf("\tb.%s = %s()", bf, info.Constructor),
			fmt.Sprintf("\tif b.%s != nil {", f),
			fmt.Sprintf("\t\tb.%s.MergeFrom(b.%s)", bf, f),
			fmt.Sprintf("\t\tb.%s = nil", f),
			"\t}",
			"}",
			"return b."+bf),
		o.method(clearer(d.Name),
			fmt.Sprintf("%s discards the value or builder held for %s.", clearer(d.Name), d.Name),
			"", o.self(),
			fmt.Sprintf("b.%s = nil", f),
			fmt.Sprintf("b.%s = nil", bf),
			"return b"),
	}

	if d.HasDefault {
		m.Init = []string{fmt.Sprintf("b.%s = %s", f, d.Default)}
	}

	m.MergeValue = mergeInto(fmt.Sprintf("value.%s()", d.Name), "")

	if d.Construction.PartialMerge {
		m.MergeBuilder = join(
			[]string{
				fmt.Sprintf("if other.%s != nil {", bf),
				fmt.Sprintf("\tb.%s().MergeFromBuilder(other.%s)", builderGetter(d.Name), bf),
				fmt.Sprintf("} else if other.%s != nil {", f),
			},
			mergeInto("other."+f, "\t"),
			[]string{"}"},
		)
	} else {
		m.MergeBuilder = join(
			[]string{
				fmt.Sprintf("if other.%s != nil {", bf),
				fmt.Sprintf("\tif built, err := other.%s.Build(); err != nil {", bf),
				fmt.Sprintf("\t\tb.fail(%s)", wrap),
				"\t} else {",
			},
			mergeInto("built", "\t\t"),
			[]string{
				"\t}",
				fmt.Sprintf("} else if other.%s != nil {", f),
			},
			mergeInto("other."+f, "\t"),
			[]string{"}"},
		)
	}

	local := "nested" + d.Name
	m.Resolve = []string{
		fmt.Sprintf("%s := b.%s", local, f),
		fmt.Sprintf("if %s == nil {", local),
		fmt.Sprintf("\tbuilder := b.%s", bf),
		"\tif builder == nil {",
		fmt.Sprintf("\t\tbuilder = %s()", info.Constructor),
		"\t}",
		"\tbuilt, err := builder.Build()",
		"\tif err != nil {",
		fmt.Sprintf("\t\treturn nil, %s", wrap),
		"\t}",
		fmt.Sprintf("\t%s = built", local),
		"}",
	}
	m.ValueExpr = local
	m.Imports = append(m.Imports, info.Imports...)
	m.Overridable = overridable(m.Methods)

	return m
}
