package plan

import (
	"fmt"

	"builder-generator/internal/analyze"
)

var (
	importIter   = analyze.Import{Name: "iter", Path: "iter"}
	importMaps   = analyze.Import{Name: "maps", Path: "maps"}
	importSlices = analyze.Import{Name: "slices", Path: "slices"}
)

// elementMethods emits the Add, AddValues and AddAll mutators shared by
// lists and sets. Only Add touches storage; the multi-element mutators
// validate and then route every element through it, so an override of Add
// is observed by all three.
func elementMethods(d PropertyDescriptor, o Owner, store string) []MethodSpec {
	add, values, all := adder(d.Name), valuesAdder(d.Name), allAdder(d.Name)
	nullable := d.Elem.Nullable()

	var check []string
	if nullable {
		check = o.nullCheck(add, "element", "element")
	}

	var validate []string
	if nullable {
		validate = []string{
			"for i, element := range elements {",
			"\tif fb.IsNil(element) {",
			fmt.Sprintf("\t\tb.fail(fb.NullElement(%q, %q, i))", o.qualified(values), "elements"),
			"\t\treturn b",
			"\t}",
			"}",
		}
	}

	seqLoop := []string{
		"for element := range seq {",
		fmt.Sprintf("\tb.%s(element)", add),
		"}",
	}
	if nullable {
		seqLoop = []string{
			"i := 0",
			"for element := range seq {",
			"\tif fb.IsNil(element) {",
			fmt.Sprintf("\t\tb.fail(fb.NullElement(%q, %q, i))", o.qualified(all), "seq"),
			"\t\treturn b",
			"\t}",
			fmt.Sprintf("\tb.%s(element)", add),
			"\ti++",
			"}",
		}
	}

	return []MethodSpec{
		o.method(add,
			fmt.Sprintf("%s adds element to %s.", add, d.Name),
			"element "+d.ElemExpr(), o.self(),
			join(check, []string{store, "return b"})...),
		o.method(values,
			fmt.Sprintf("%s adds each element to %s, in order.", values, d.Name),
			"elements ..."+d.ElemExpr(), o.self(),
			join(validate, []string{
				"for _, element := range elements {",
				fmt.Sprintf("\tb.%s(element)", add),
				"}",
				"return b",
			})...),
		o.method(all,
			fmt.Sprintf("%s adds every element of seq to %s. seq is iterated once.", all, d.Name),
			fmt.Sprintf("seq iter.Seq[%s]", d.ElemExpr()), o.self(),
			join([]string{
				"if seq == nil {",
				fmt.Sprintf("\tb.fail(fb.NullArgument(%q, %q))", o.qualified(all), "seq"),
				"\treturn b",
				"}",
			}, seqLoop, []string{"return b"})...),
	}
}

// listStrategy stores a plain slice. Merges append.
type listStrategy struct{}

func (listStrategy) Members(d PropertyDescriptor, o Owner) BuilderMemberSpec {
	m := baseMember(d)
	f := d.Field

	m.Fields = []FieldSpec{{Name: f, Type: "[]" + d.ElemExpr()}}
	m.Methods = append(elementMethods(d, o, fmt.Sprintf("b.%s = append(b.%s, element)", f, f)),
		o.method(clearer(d.Name),
			fmt.Sprintf("%s removes every element from %s.", clearer(d.Name), d.Name),
			"", o.self(),
			fmt.Sprintf("b.%s = nil", f),
			"return b"),
		o.method(d.Name,
			fmt.Sprintf("%s returns a read-only view of %s that reflects later changes.", d.Name, d.Name),
			"", fmt.Sprintf("fb.ListView[%s]", d.ElemExpr()),
			fmt.Sprintf("return fb.NewListView(&b.%s)", f)),
	)

	m.MergeBuilder = []string{fmt.Sprintf("b.%s(other.%s...)", valuesAdder(d.Name), f)}
	m.Imports = append(m.Imports, importIter)

	if d.Form == FormRuntime {
		m.MergeValue = []string{fmt.Sprintf("b.%s(value.%s().Values())", allAdder(d.Name), d.Name)}
		m.ValueExpr = fmt.Sprintf("fb.ListOf(b.%s...)", f)
	} else {
		m.MergeValue = []string{fmt.Sprintf("b.%s(value.%s()...)", valuesAdder(d.Name), d.Name)}
		m.ValueExpr = fmt.Sprintf("slices.Clone(b.%s)", f)
		m.Accessor = []string{fmt.Sprintf("return slices.Clone(v.%s)", f)}
		m.Imports = append(m.Imports, importSlices)
	}

	m.Overridable = overridable(m.Methods)

	return m
}

// setStrategy stores an fb.OrderedSet. Duplicates are ignored and
// first-insertion order is kept. Merges are unions.
type setStrategy struct{}

func (setStrategy) Members(d PropertyDescriptor, o Owner) BuilderMemberSpec {
	m := baseMember(d)
	f := d.Field

	var check []string
	if d.Elem.Nullable() {
		check = o.nullCheck(remover(d.Name), "element", "element")
	}

	m.Fields = []FieldSpec{{Name: f, Type: fmt.Sprintf("fb.OrderedSet[%s]", d.ElemExpr())}}
	m.Methods = append(elementMethods(d, o, fmt.Sprintf("b.%s.Add(element)", f)),
		o.method(remover(d.Name),
			fmt.Sprintf("%s removes element from %s.", remover(d.Name), d.Name),
			"element "+d.ElemExpr(), o.self(),
			join(check, []string{
				fmt.Sprintf("b.%s.Remove(element)", f),
				"return b",
			})...),
		o.method(clearer(d.Name),
			fmt.Sprintf("%s removes every element from %s.", clearer(d.Name), d.Name),
			"", o.self(),
			fmt.Sprintf("b.%s.Clear()", f),
			"return b"),
		o.method(d.Name,
			fmt.Sprintf("%s returns a read-only view of %s that reflects later changes.", d.Name, d.Name),
			"", fmt.Sprintf("fb.SetView[%s]", d.ElemExpr()),
			fmt.Sprintf("return fb.NewSetView(&b.%s)", f)),
	)

	m.MergeBuilder = []string{fmt.Sprintf("b.%s(other.%s.Values())", allAdder(d.Name), f)}
	m.Imports = append(m.Imports, importIter)

	if d.Form == FormRuntime {
		m.MergeValue = []string{fmt.Sprintf("b.%s(value.%s().Values())", allAdder(d.Name), d.Name)}
		m.ValueExpr = fmt.Sprintf("b.%s.Freeze()", f)
	} else {
		m.MergeValue = []string{fmt.Sprintf("b.%s(maps.Keys(value.%s()))", allAdder(d.Name), d.Name)}
		m.ValueExpr = fmt.Sprintf("b.%s.ToMap()", f)
		m.Accessor = []string{fmt.Sprintf("return maps.Clone(v.%s)", f)}
		m.Imports = append(m.Imports, importMaps)
	}

	m.Overridable = overridable(m.Methods)

	return m
}
