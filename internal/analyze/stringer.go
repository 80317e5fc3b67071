package analyze

import (
	"go/ast"
	"go/parser"
	"go/types"
	"strconv"
	"strings"

	"builder-generator/internal/common"
)

// TypeStringer renders types as they must be spelled inside a file of the
// generating package, and records the imports that spelling needs.
type TypeStringer struct {
	pkg *types.Package
}

// NewTypeStringer creates a TypeStringer for code living in pkg.
func NewTypeStringer(pkg *types.Package) *TypeStringer {
	return &TypeStringer{pkg: pkg}
}

// TypeString returns the expression for t and the imports it refers to.
// Types of the generating package are left unqualified.
func (s *TypeStringer) TypeString(t types.Type) (string, []Import) {
	var imports []Import

	qualifier := func(p *types.Package) string {
		if s.pkg != nil && p.Path() == s.pkg.Path() {
			return ""
		}

		imports = append(imports, Import{Name: p.Name(), Path: p.Path()})

		return p.Name()
	}

	expr := types.TypeString(t, qualifier)

	return expr, dedupImports(imports)
}

// Qualify prefixes name with the package name of pkg unless pkg is the
// generating package.
func (s *TypeStringer) Qualify(pkg *types.Package, name string) (string, []Import) {
	if pkg == nil || (s.pkg != nil && pkg.Path() == s.pkg.Path()) {
		return name, nil
	}

	return pkg.Name() + "." + name, []Import{{Name: pkg.Name(), Path: pkg.Path()}}
}

// FileImports maps the names under which a file imports packages to their
// paths. Blank and dot imports are skipped. names resolves the package name
// of an unaliased import; when it returns "" the last path element is used.
func FileImports(file *ast.File, names func(path string) string) map[string]string {
	out := make(map[string]string, len(file.Imports))

	for _, spec := range file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		var name string

		switch {
		case spec.Name != nil:
			name = spec.Name.Name
		case names != nil:
			name = names(p)
		}

		if name == "" {
			name = common.PkgAlias(p)
		}

		if name == "_" || name == "." {
			continue
		}

		out[name] = p
	}

	return out
}

// ExprImports parses a Go expression and returns the imports its package
// selectors refer to, resolved against fileImports. Identifiers that are
// not imported package names are assumed to be local.
func ExprImports(expr string, fileImports map[string]string) ([]Import, error) {
	parsed, err := parser.ParseExpr(strings.TrimSpace(expr))
	if err != nil {
		return nil, err
	}

	var imports []Import

	ast.Inspect(parsed, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if ident, ok := sel.X.(*ast.Ident); ok {
			if p, ok := fileImports[ident.Name]; ok {
				imports = append(imports, Import{Name: ident.Name, Path: p})
			}
		}

		return true
	})

	return dedupImports(imports), nil
}

func dedupImports(imports []Import) []Import {
	if len(imports) == 0 {
		return nil
	}

	seen := make(map[Import]bool, len(imports))
	out := imports[:0]

	for _, imp := range imports {
		if seen[imp] {
			continue
		}

		seen[imp] = true
		out = append(out, imp)
	}

	return sortImports(out)
}
