package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Source directives.
const (
	// DirectiveGenerate marks an interface for builder generation.
	DirectiveGenerate = "//builder:generate"
	// DirectiveDefault on an accessor gives the property a default value.
	DirectiveDefault = "//builder:default"
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTypes selects interfaces by name ("Order" or "order.Order") in
// addition to those carrying the generate directive.
func WithTypes(names ...string) Option {
	return func(a *Analyzer) {
		for _, n := range names {
			a.selected[n] = true
		}
	}
}

// WithBuilderNames overrides the builder type name per interface name.
func WithBuilderNames(names map[string]string) Option {
	return func(a *Analyzer) {
		for k, v := range names {
			a.builderNames[k] = v
		}
	}
}

// WithDir sets the directory packages are resolved from.
func WithDir(dir string) Option {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// Analyzer loads Go packages and collects the declarations to generate
// builders for.
type Analyzer struct {
	graph        *TypeGraph
	typeCache    map[cacheKey]*TypeInfo // Per generating package
	selected     map[string]bool
	builderNames map[string]string
	dir          string
	// inRun maps declarations selected in this run to their builder names.
	inRun map[TypeID]string
}

type cacheKey struct {
	t   types.Type
	pkg string
}

// declSite is a selected interface awaiting extraction.
type declSite struct {
	pkg  *packages.Package
	file *ast.File
	gen  *ast.GenDecl
	spec *ast.TypeSpec
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		graph:        NewTypeGraph(),
		typeCache:    make(map[cacheKey]*TypeInfo),
		selected:     make(map[string]bool),
		builderNames: make(map[string]string),
		inRun:        make(map[TypeID]string),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/order").
//
// Type errors are tolerated and recorded as warnings: a package commonly
// refers to builders that have not been generated yet. Any other package
// error is fatal.
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				a.graph.Diagnostics.AddWarning(diagnostic.CodeTypeCheck, e.Error(), "", "")
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var sites []declSite

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
		}

		sites = append(sites, a.processPackage(pkg)...)
	}

	// Declarations are extracted once every selected type is known, so
	// that properties of selected types classify as buildable.
	for _, site := range sites {
		if decl := a.extractDecl(site); decl != nil {
			a.graph.Decls = append(a.graph.Decls, decl)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage records package info and returns the selected interfaces.
func (a *Analyzer) processPackage(pkg *packages.Package) []declSite {
	pkgInfo := &PackageInfo{
		Path:        pkg.PkgPath,
		Name:        pkg.Name,
		Dir:         packageDir(pkg),
		UserMethods: collectUserMethods(pkg.Syntax),
	}
	a.graph.Packages[pkg.PkgPath] = pkgInfo

	var sites []declSite

	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gen, ok := d.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				if _, ok := ts.Type.(*ast.InterfaceType); !ok {
					continue
				}

				pkgInfo.Interfaces = append(pkgInfo.Interfaces, ts.Name.Name)

				if !hasDirective(specDoc(gen, ts), DirectiveGenerate) && !a.isSelected(pkg.Name, ts.Name.Name) {
					continue
				}

				if ts.TypeParams != nil {
					a.graph.Diagnostics.AddError(diagnostic.CodeUnsupportedType,
						"generic declarations are not supported", ts.Name.Name, "")

					continue
				}

				id := TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}
				a.inRun[id] = a.builderName(pkg.Name, ts.Name.Name)

				sites = append(sites, declSite{pkg: pkg, file: file, gen: gen, spec: ts})
			}
		}
	}

	return sites
}

func (a *Analyzer) isSelected(pkgName, name string) bool {
	return a.selected[name] || a.selected[pkgName+"."+name]
}

func (a *Analyzer) builderName(pkgName, name string) string {
	if b, ok := a.builderNames[pkgName+"."+name]; ok && b != "" {
		return b
	}

	if b, ok := a.builderNames[name]; ok && b != "" {
		return b
	}

	return name + "Builder"
}

// extractDecl turns a selected interface into a TypeDecl. It returns nil
// when the declaration has unsupported methods or invalid defaults; the
// reasons are recorded as error diagnostics.
func (a *Analyzer) extractDecl(site declSite) *TypeDecl {
	pkg := site.pkg
	name := site.spec.Name.Name

	obj, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		a.graph.Diagnostics.AddError(diagnostic.CodeUnknownType, "declaration not found in package scope", name, "")
		return nil
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		a.graph.Diagnostics.AddError(diagnostic.CodeUnsupportedType, "aliases cannot be generated", name, "")
		return nil
	}

	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		a.graph.Diagnostics.AddError(diagnostic.CodeUnsupportedType, "not an interface", name, "")
		return nil
	}

	id := TypeID{PkgPath: pkg.PkgPath, Name: name}
	pkgInfo := a.graph.Packages[pkg.PkgPath]
	stringer := NewTypeStringer(pkg.Types)

	decl := &TypeDecl{
		ID:          id,
		PkgName:     pkg.Name,
		Dir:         pkgInfo.Dir,
		BuilderName: a.inRun[id],
		FileImports: FileImports(site.file, importName(pkg)),
		Doc:         strings.TrimSpace(specDoc(site.gen, site.spec).Text()),
	}
	decl.Overrides = slices.Clone(pkgInfo.UserMethods[decl.BuilderName])

	failed := false

	for _, m := range declaredMethods(pkg, site.spec.Type.(*ast.InterfaceType), iface) {
		sig, _ := m.fn.Type().(*types.Signature)
		if sig == nil || isReserved(m.fn.Name(), sig, named) {
			continue
		}

		if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			a.graph.Diagnostics.AddError(diagnostic.CodeUnsupportedMethod,
				fmt.Sprintf("method %s is not an accessor: properties take no parameters and return one value", m.fn.Name()),
				name, m.fn.Name())

			failed = true

			continue
		}

		prop := PropertyInput{
			Name: m.fn.Name(),
			Type: a.typeInfo(sig.Results().At(0).Type(), stringer),
		}

		if m.field != nil {
			prop.Doc = strings.TrimSpace(m.field.Doc.Text())

			if def, ok := directiveArg(m.field.Doc, DirectiveDefault); ok {
				imports, err := ExprImports(def, decl.FileImports)
				if err != nil {
					a.graph.Diagnostics.AddError(diagnostic.CodeInvalidDefault,
						fmt.Sprintf("default %q is not a Go expression: %v", def, err), name, prop.Name)

					failed = true

					continue
				}

				prop.Default = def
				prop.HasDefault = true
				prop.Imports = imports
			}
		}

		decl.Properties = append(decl.Properties, prop)
	}

	if failed {
		return nil
	}

	return decl
}

// method is an interface method with its AST field when declared directly.
type method struct {
	fn    *types.Func
	field *ast.Field
}

// declaredMethods lists the methods of an interface in declaration order.
// Methods of embedded interfaces follow in the order go/types reports them.
func declaredMethods(pkg *packages.Package, it *ast.InterfaceType, iface *types.Interface) []method {
	byName := make(map[string]*types.Func, iface.NumMethods())
	for i := range iface.NumMethods() {
		byName[iface.Method(i).Name()] = iface.Method(i)
	}

	seen := make(map[string]bool)

	var out []method

	add := func(fn *types.Func, field *ast.Field) {
		if fn == nil || seen[fn.Name()] {
			return
		}

		seen[fn.Name()] = true
		out = append(out, method{fn: fn, field: field})
	}

	for _, field := range it.Methods.List {
		if len(field.Names) > 0 {
			for _, n := range field.Names {
				add(byName[n.Name], field)
			}

			continue
		}

		embedded := pkg.TypesInfo.TypeOf(field.Type)
		if embedded == nil {
			continue
		}

		if ei, ok := embedded.Underlying().(*types.Interface); ok {
			for i := range ei.NumMethods() {
				add(byName[ei.Method(i).Name()], nil)
			}
		}
	}

	return out
}

// isReserved reports whether a method is implemented by every generated
// value type and therefore is not a property.
func isReserved(name string, sig *types.Signature, named *types.Named) bool {
	params, results := sig.Params(), sig.Results()

	switch name {
	case "String":
		return params.Len() == 0 && results.Len() == 1 && isBasic(results.At(0).Type(), types.String)
	case "Hash":
		return params.Len() == 0 && results.Len() == 1 && isBasic(results.At(0).Type(), types.Uint64)
	case "Equal":
		return params.Len() == 1 && results.Len() == 1 &&
			types.Identical(params.At(0).Type(), named) && isBasic(results.At(0).Type(), types.Bool)
	case "ToBuilder":
		return params.Len() == 0 && results.Len() == 1
	default:
		return false
	}
}

func isBasic(t types.Type, kind types.BasicKind) bool {
	b, ok := t.(*types.Basic)
	return ok && b.Kind() == kind
}

// typeInfo converts a go/types.Type into a TypeInfo spelled for the package
// of s.
func (a *Analyzer) typeInfo(t types.Type, s *TypeStringer) *TypeInfo {
	key := cacheKey{t: t, pkg: s.pkg.Path()}
	if cached, ok := a.typeCache[key]; ok {
		return cached
	}

	expr, imports := s.TypeString(t)
	info := &TypeInfo{
		Expr:    expr,
		Imports: imports,
		GoType:  t,
	}

	// Pre-cache to handle recursive types
	a.typeCache[key] = info

	switch tt := types.Unalias(t).(type) {
	case *types.Named:
		obj := tt.Obj()

		info.ID = TypeID{Name: obj.Name()}
		if obj.Pkg() != nil {
			info.ID.PkgPath = obj.Pkg().Path()
		}

		for i := range tt.TypeArgs().Len() {
			info.TypeArgs = append(info.TypeArgs, a.typeInfo(tt.TypeArgs().At(i), s))
		}

		info.Kind = structuralKind(tt.Underlying())
		if info.Kind == TypeKindInterface {
			info.Builder = a.builderInfo(tt, s)
		}

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.Elem = a.typeInfo(tt.Elem(), s)

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.Elem = a.typeInfo(tt.Elem(), s)

	case *types.Array:
		info.Kind = TypeKindArray
		info.Elem = a.typeInfo(tt.Elem(), s)

	case *types.Map:
		info.Kind = TypeKindMap
		info.Key = a.typeInfo(tt.Key(), s)
		info.Elem = a.typeInfo(tt.Elem(), s)

	case *types.Chan:
		info.Kind = TypeKindChan
		info.Elem = a.typeInfo(tt.Elem(), s)

	default:
		info.Kind = structuralKind(tt)
	}

	return info
}

// structuralKind maps a type to its TypeKind without descending into it.
func structuralKind(t types.Type) TypeKind {
	switch tt := t.(type) {
	case *types.Basic:
		if tt.Kind() == types.Invalid {
			return TypeKindInvalid
		}

		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice:
		return TypeKindSlice
	case *types.Array:
		return TypeKindArray
	case *types.Map:
		return TypeKindMap
	case *types.Interface:
		return TypeKindInterface
	case *types.Signature:
		return TypeKindFunc
	case *types.Chan:
		return TypeKindChan
	case *types.TypeParam:
		return TypeKindTypeParam
	default:
		return TypeKindUnknown
	}
}

// builderInfo returns the builder of a named interface, or nil when the
// interface is not buildable. Interfaces selected in this run are buildable
// by construction; others need a hand-written or previously generated
// builder in their package.
func (a *Analyzer) builderInfo(named *types.Named, s *TypeStringer) *BuilderInfo {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return nil
	}

	if name, ok := a.inRun[TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}]; ok {
		return newBuilderInfo(s, obj.Pkg(), name, true)
	}

	name := obj.Name() + "Builder"
	scope := obj.Pkg().Scope()

	builder, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}

	ptr := types.NewPointer(builder.Type())

	ctor, ok := scope.Lookup("New" + name).(*types.Func)
	if !ok || !returnsOnly(ctor.Type().(*types.Signature), ptr) {
		return nil
	}

	mset := types.NewMethodSet(ptr)

	build := methodSig(mset, "Build")
	if build == nil || build.Params().Len() != 0 || build.Results().Len() != 2 ||
		!types.Identical(build.Results().At(0).Type(), named) ||
		!isError(build.Results().At(1).Type()) {
		return nil
	}

	merge := methodSig(mset, "MergeFrom")
	if merge == nil || merge.Params().Len() != 1 || !types.Identical(merge.Params().At(0).Type(), named) {
		return nil
	}

	partial := methodSig(mset, "MergeFromBuilder")
	hasPartial := partial != nil && partial.Params().Len() == 1 && types.Identical(partial.Params().At(0).Type(), ptr)

	return newBuilderInfo(s, obj.Pkg(), name, hasPartial)
}

func newBuilderInfo(s *TypeStringer, pkg *types.Package, name string, partial bool) *BuilderInfo {
	expr, imports := s.Qualify(pkg, name)
	ctor, _ := s.Qualify(pkg, "New"+name)

	return &BuilderInfo{
		Expr:         expr,
		Constructor:  ctor,
		PartialMerge: partial,
		Imports:      imports,
	}
}

func methodSig(mset *types.MethodSet, name string) *types.Signature {
	for i := range mset.Len() {
		if fn := mset.At(i).Obj(); fn.Name() == name {
			sig, _ := fn.Type().(*types.Signature)
			return sig
		}
	}

	return nil
}

func returnsOnly(sig *types.Signature, t types.Type) bool {
	return sig.Params().Len() == 0 && sig.Results().Len() == 1 && types.Identical(sig.Results().At(0).Type(), t)
}

func isError(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

// collectUserMethods maps receiver type names to the methods declared on
// them in files that are not generated.
func collectUserMethods(files []*ast.File) map[string][]string {
	out := make(map[string][]string)

	for _, file := range files {
		if ast.IsGenerated(file) {
			continue
		}

		for _, d := range file.Decls {
			fn, ok := d.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}

			if recv := receiverName(fn.Recv.List[0].Type); recv != "" {
				out[recv] = append(out[recv], fn.Name.Name)
			}
		}
	}

	for _, names := range out {
		slices.Sort(names)
	}

	return out
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.ParenExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	default:
		return ""
	}
}

// specDoc returns the doc comment of a type spec, falling back to the
// declaration's comment for ungrouped declarations.
func specDoc(gen *ast.GenDecl, ts *ast.TypeSpec) *ast.CommentGroup {
	if ts.Doc != nil {
		return ts.Doc
	}

	if common.IsSingle(gen.Specs) {
		return gen.Doc
	}

	return nil
}

// hasDirective reports whether doc contains the directive line.
func hasDirective(doc *ast.CommentGroup, directive string) bool {
	_, ok := directiveArg(doc, directive)
	return ok
}

// directiveArg returns the text following a directive in doc.
func directiveArg(doc *ast.CommentGroup, directive string) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		if c.Text == directive {
			return "", true
		}

		if rest, ok := strings.CutPrefix(c.Text, directive+" "); ok {
			return strings.TrimSpace(rest), true
		}
	}

	return "", false
}

func importName(pkg *packages.Package) func(string) string {
	return func(path string) string {
		if imp, ok := pkg.Imports[path]; ok && imp != nil {
			return imp.Name
		}

		return ""
	}
}

func packageDir(pkg *packages.Package) string {
	switch {
	case len(pkg.GoFiles) > 0:
		return filepath.Dir(pkg.GoFiles[0])
	case len(pkg.CompiledGoFiles) > 0:
		return filepath.Dir(pkg.CompiledGoFiles[0])
	default:
		return ""
	}
}
