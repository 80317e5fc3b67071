package plan

import (
	"fmt"
	"strings"
)

// mapStrategy stores an fb.OrderedMap. Iteration follows key insertion
// order, a repeated key overwrites in place, and merges put every entry.
type mapStrategy struct{}

func (mapStrategy) Members(d PropertyDescriptor, o Owner) BuilderMemberSpec {
	m := baseMember(d)
	f := d.Field
	put, all := putter(d.Name), allPutter(d.Name)
	kv := fmt.Sprintf("%s, %s", d.KeyExpr(), d.ElemExpr())

	var (
		putCheck, removeCheck []string
		nilConds              []string
	)

	if d.Key.Nullable() {
		putCheck = append(putCheck, o.nullCheck(put, "key", "key")...)
		removeCheck = o.nullCheck(remover(d.Name), "key", "key")
		nilConds = append(nilConds, "fb.IsNil(key)")
	}

	if d.Elem.Nullable() {
		putCheck = append(putCheck, o.nullCheck(put, "value", "value")...)
		nilConds = append(nilConds, "fb.IsNil(value)")
	}

	loop := []string{
		"for key, value := range seq {",
		fmt.Sprintf("\tb.%s(key, value)", put),
		"}",
	}
	if len(nilConds) > 0 {
		loop = []string{
			"for key, value := range seq {",
			fmt.Sprintf("\tif %s {", strings.Join(nilConds, " || ")),
			fmt.Sprintf("\t\tb.fail(fb.NullArgument(%q, %q))", o.qualified(all), "seq"),
			"\t\treturn b",
			"\t}",
			fmt.Sprintf("\tb.%s(key, value)", put),
			"}",
		}
	}

	m.Fields = []FieldSpec{{Name: f, Type: fmt.Sprintf("fb.OrderedMap[%s]", kv)}}
	m.Methods = []MethodSpec{
		o.method(put,
			fmt.Sprintf("%s associates key with value in %s, replacing any previous value.", put, d.Name),
			fmt.Sprintf("key %s, value %s", d.KeyExpr(), d.ElemExpr()), o.self(),
			join(putCheck, []string{
				fmt.Sprintf("b.%s.Put(key, value)", f),
				"return b",
			})...),
		o.method(all,
			fmt.Sprintf("%s puts every entry of seq into %s, in iteration order.", all, d.Name),
			fmt.Sprintf("seq iter.Seq2[%s]", kv), o.self(),
			join([]string{
				"if seq == nil {",
				fmt.Sprintf("\tb.fail(fb.NullArgument(%q, %q))", o.qualified(all), "seq"),
				"\treturn b",
				"}",
			}, loop, []string{"return b"})...),
		o.method(remover(d.Name),
			fmt.Sprintf("%s removes key from %s.", remover(d.Name), d.Name),
			"key "+d.KeyExpr(), o.self(),
			join(removeCheck, []string{
				fmt.Sprintf("b.%s.Remove(key)", f),
				"return b",
			})...),
		o.method(clearer(d.Name),
			fmt.Sprintf("%s removes every entry from %s.", clearer(d.Name), d.Name),
			"", o.self(),
			fmt.Sprintf("b.%s.Clear()", f),
			"return b"),
		o.method(d.Name,
			fmt.Sprintf("%s returns a read-only view of %s that reflects later changes.", d.Name, d.Name),
			"", fmt.Sprintf("fb.MapView[%s]", kv),
			fmt.Sprintf("return fb.NewMapView(&b.%s)", f)),
	}

	m.MergeBuilder = []string{fmt.Sprintf("b.%s(other.%s.All())", all, f)}
	m.Imports = append(m.Imports, importIter)

	if d.Form == FormRuntime {
		m.MergeValue = []string{fmt.Sprintf("b.%s(value.%s().All())", all, d.Name)}
		m.ValueExpr = fmt.Sprintf("b.%s.Freeze()", f)
	} else {
		m.MergeValue = []string{fmt.Sprintf("b.%s(maps.All(value.%s()))", all, d.Name)}
		m.ValueExpr = fmt.Sprintf("b.%s.ToMap()", f)
		m.Accessor = []string{fmt.Sprintf("return maps.Clone(v.%s)", f)}
		m.Imports = append(m.Imports, importMaps)
	}

	m.Overridable = overridable(m.Methods)

	return m
}
