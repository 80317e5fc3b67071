package plan

import (
	"fmt"
)

// scalarStrategy stores a single value with a set flag. Required scalars
// fail Build while the flag is down; builder merges copy only set values.
type scalarStrategy struct{}

func (scalarStrategy) Members(d PropertyDescriptor, o Owner) BuilderMemberSpec {
	m := baseMember(d)
	f, flag := d.Field, d.Field+"Set"

	m.Fields = []FieldSpec{
		{Name: f, Type: d.TypeExpr()},
		{Name: flag, Type: "bool"},
	}

	var check []string
	if d.Type.Nullable() {
		check = o.nullCheck(setter(d.Name), "value", "value")
	}

	m.Methods = []MethodSpec{
		o.method(setter(d.Name),
			fmt.Sprintf("%s sets the value of %s.", setter(d.Name), d.Name),
			"value "+d.TypeExpr(), o.self(),
			join(check, []string{
				fmt.Sprintf("b.%s = value", f),
				fmt.Sprintf("b.%s = true", flag),
				"return b",
			})...),
		o.method(d.Name,
			fmt.Sprintf("%s returns the current value of %s.", d.Name, d.Name),
			"", d.TypeExpr(),
			"return b."+f),
	}

	if d.HasDefault {
		m.Init = []string{fmt.Sprintf("b.%s = %s", f, d.Default)}
	}

	m.MergeValue = []string{fmt.Sprintf("b.%s(value.%s())", setter(d.Name), d.Name)}
	if d.Type.Nullable() && !d.Required {
		// A nil default survives Build but is rejected by the setter.
		m.MergeValue = []string{
			fmt.Sprintf("if x := value.%s(); !fb.IsNil(x) {", d.Name),
			fmt.Sprintf("\tb.%s(x)", setter(d.Name)),
			"}",
		}
	}
	m.MergeBuilder = []string{
		fmt.Sprintf("if other.%s {", flag),
		fmt.Sprintf("\tb.%s(other.%s)", setter(d.Name), f),
		"}",
	}

	if d.Required {
		m.Required = true
		m.Unset = "!b." + flag
	}

	m.Overridable = overridable(m.Methods)

	return m
}

// optionalStrategy stores an fb.Optional. Absent sources never overwrite a
// present value on merge, and optionals are never required.
type optionalStrategy struct{}

func (optionalStrategy) Members(d PropertyDescriptor, o Owner) BuilderMemberSpec {
	m := baseMember(d)
	f := d.Field
	optType := fmt.Sprintf("fb.Optional[%s]", d.ElemExpr())

	m.Fields = []FieldSpec{{Name: f, Type: optType}}

	var check []string
	if d.Elem.Nullable() {
		check = o.nullCheck(setter(d.Name), "value", "value")
	}

	m.Methods = []MethodSpec{
		o.method(setter(d.Name),
			fmt.Sprintf("%s sets %s to value.", setter(d.Name), d.Name),
			"value "+d.ElemExpr(), o.self(),
			join(check, []string{
				fmt.Sprintf("b.%s = fb.Some(value)", f),
				"return b",
			})...),
		o.method(nullableSetter(d.Name),
			fmt.Sprintf("%s sets %s to the value pointed to, or clears it when value is nil.", nullableSetter(d.Name), d.Name),
			"value *"+d.ElemExpr(), o.self(),
			fmt.Sprintf("b.%s = fb.OptionalOf(value)", f),
			"return b"),
		o.method(clearer(d.Name),
			fmt.Sprintf("%s makes %s absent.", clearer(d.Name), d.Name),
			"", o.self(),
			fmt.Sprintf("b.%s = fb.None[%s]()", f, d.ElemExpr()),
			"return b"),
		o.method(d.Name,
			fmt.Sprintf("%s returns the current value of %s.", d.Name, d.Name),
			"", optType,
			"return b."+f),
	}

	if d.Form == FormRuntime {
		m.MergeValue = []string{
			fmt.Sprintf("if x, ok := value.%s().Get(); ok {", d.Name),
			fmt.Sprintf("\tb.%s(x)", setter(d.Name)),
			"}",
		}
		m.Equal = fmt.Sprintf("fb.Equal(v.%s, other.%s())", f, d.Name)
	} else {
		m.MergeValue = []string{
			fmt.Sprintf("if x := value.%s(); x != nil {", d.Name),
			fmt.Sprintf("\tb.%s(*x)", setter(d.Name)),
			"}",
		}
		m.Accessor = []string{fmt.Sprintf("return v.%s.Ptr()", f)}
		m.Equal = fmt.Sprintf("fb.Equal(v.%s, fb.OptionalOf(other.%s()))", f, d.Name)
	}

	m.MergeBuilder = []string{
		fmt.Sprintf("if x, ok := other.%s.Get(); ok {", f),
		fmt.Sprintf("\tb.%s(x)", setter(d.Name)),
		"}",
	}

	m.ValueField = FieldSpec{Name: f, Type: optType}
	m.Format = []string{
		fmt.Sprintf("if x, ok := v.%s.Get(); ok {", f),
		fmt.Sprintf("\tparts = append(parts, %q+fb.Format(x))", d.Name+"="),
		"}",
	}
	m.Overridable = overridable(m.Methods)

	return m
}
