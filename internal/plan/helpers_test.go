package plan

import (
	"builder-generator/internal/analyze"
)

const testPkg = "builder-generator/examples/order"

func basic(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindBasic, Expr: name}
}

func named(pkgPath, name string, kind analyze.TypeKind, expr string) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: pkgPath, Name: name},
		Kind: kind,
		Expr: expr,
	}
}

func pointer(elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindPointer, Expr: "*" + elem.Expr, Elem: elem}
}

func slice(elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindSlice, Expr: "[]" + elem.Expr, Elem: elem}
}

func mapOf(key, elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		Kind: analyze.TypeKindMap,
		Expr: "map[" + key.Expr + "]" + elem.Expr,
		Key:  key,
		Elem: elem,
	}
}

func emptyStruct() *analyze.TypeInfo {
	return &analyze.TypeInfo{Kind: analyze.TypeKindStruct, Expr: "struct{}"}
}

func runtimeType(name string, args ...*analyze.TypeInfo) *analyze.TypeInfo {
	expr := "fb." + name + "["
	for i, a := range args {
		if i > 0 {
			expr += ", "
		}

		expr += a.Expr
	}

	t := named(RuntimePkgPath, name, analyze.TypeKindStruct, expr+"]")
	t.TypeArgs = args
	t.Imports = []analyze.Import{{Name: "fb", Path: RuntimePkgPath}}

	return t
}

func buildable(name string, partial bool) *analyze.TypeInfo {
	t := named(testPkg, name, analyze.TypeKindInterface, name)
	t.Builder = &analyze.BuilderInfo{
		Expr:         name + "Builder",
		Constructor:  "New" + name + "Builder",
		PartialMerge: partial,
	}

	return t
}

func prop(name string, t *analyze.TypeInfo) analyze.PropertyInput {
	return analyze.PropertyInput{Name: name, Type: t}
}

func decl(name string, props ...analyze.PropertyInput) *analyze.TypeDecl {
	return &analyze.TypeDecl{
		ID:          analyze.TypeID{PkgPath: testPkg, Name: name},
		PkgName:     "order",
		BuilderName: name + "Builder",
		Properties:  props,
	}
}

func methodNames(m BuilderMemberSpec) []string {
	var names []string
	for _, method := range m.Methods {
		names = append(names, method.Name)
	}

	return names
}

func findMethod(m BuilderMemberSpec, name string) (MethodSpec, bool) {
	for _, method := range m.Methods {
		if method.Name == name {
			return method, true
		}
	}

	return MethodSpec{}, false
}
