package config

import (
	"fmt"

	"go.uber.org/multierr"

	"builder-generator/internal/analyze"
)

// Apply merges configured defaults into the declarations of graph. A
// default declared by directive is kept. Unknown types and properties are
// skipped; Validate reports them.
func Apply(f *File, graph *analyze.TypeGraph) error {
	if f == nil || graph == nil {
		return nil
	}

	var errs error

	for i := range f.Types {
		tc := &f.Types[i]

		decl := graph.DeclByName(tc.Name)
		if decl == nil {
			continue
		}

		for _, name := range tc.Defaults.Names() {
			prop, ok := decl.Property(name)
			if !ok || prop.HasDefault {
				continue
			}

			expr := tc.Defaults[name]

			imports, err := analyze.ExprImports(expr, decl.FileImports)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s.%s: default %q: %w", decl.ID.Name, name, err))
				continue
			}

			prop.Default = expr
			prop.HasDefault = true
			prop.Imports = imports
		}
	}

	return errs
}

// FromGraph returns a configuration listing every declaration of graph,
// with the builder name only where it is not the conventional one.
func FromGraph(graph *analyze.TypeGraph) *File {
	f := Default()

	for _, decl := range graph.Decls {
		tc := TypeConfig{Name: decl.PkgName + "." + decl.ID.Name}
		if decl.BuilderName != decl.ID.Name+"Builder" {
			tc.Builder = decl.BuilderName
		}

		for _, p := range decl.Properties {
			if p.HasDefault {
				if tc.Defaults == nil {
					tc.Defaults = make(Defaults)
				}

				tc.Defaults[p.Name] = p.Default
			}
		}

		f.Types = append(f.Types, tc)
	}

	return f
}
