package config

import (
	"fmt"
	"go/parser"
	"go/token"
	"slices"
	"strings"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/match"
)

// Validate checks a configuration against the analyzed declarations.
// Types and properties that do not resolve are reported with suggestions
// from the names that do.
func Validate(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeInvalidConfig, "config is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError(diagnostic.CodeInvalidConfig, "type graph is nil", "", "")
		return res
	}

	if f.Version != Version {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("unsupported version %q, expected %q", f.Version, Version), "", "")
	}

	if err := validateSuffix(f.Output.Suffix); err != nil {
		res.AddError(diagnostic.CodeInvalidConfig, err.Error(), "", "")
	}

	seen := make(map[string]bool)

	for i := range f.Types {
		tc := &f.Types[i]

		if tc.Name == "" {
			res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("types[%d]: name is required", i), "", "")
			continue
		}

		if seen[tc.Name] {
			res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("duplicate type %q", tc.Name), tc.Name, "")
			continue
		}

		seen[tc.Name] = true

		if tc.Builder != "" && !token.IsIdentifier(tc.Builder) {
			res.AddError(diagnostic.CodeInvalidConfig,
				fmt.Sprintf("builder name %q is not a Go identifier", tc.Builder), tc.Name, "")
		}

		decl := graph.DeclByName(tc.Name)
		if decl == nil {
			res.Report(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeUnknownType,
				Message:     fmt.Sprintf("type %q not found", tc.Name),
				TypeName:    tc.Name,
				Suggestions: match.Suggest(tc.Name, interfaceNames(graph), match.DefaultSuggestions),
			})

			continue
		}

		validateDefaults(res, tc, decl)
	}

	return res
}

func validateSuffix(suffix string) error {
	switch {
	case !strings.HasSuffix(suffix, ".go"):
		return fmt.Errorf("output suffix %q must end in .go", suffix)
	case strings.HasSuffix(suffix, "_test.go"):
		return fmt.Errorf("output suffix %q would produce test files", suffix)
	case strings.ContainsAny(suffix, `/\`):
		return fmt.Errorf("output suffix %q must not contain a path separator", suffix)
	default:
		return nil
	}
}

func validateDefaults(res *diagnostic.Diagnostics, tc *TypeConfig, decl *analyze.TypeDecl) {
	for _, name := range tc.Defaults.Names() {
		expr := tc.Defaults[name]

		prop, ok := decl.Property(name)
		if !ok {
			res.Report(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeUnknownProperty,
				Message:     fmt.Sprintf("%s has no property %q", decl.ID.Name, name),
				TypeName:    decl.ID.Name,
				Property:    name,
				Suggestions: match.Suggest(name, propertyNames(decl), match.DefaultSuggestions),
			})

			continue
		}

		if _, err := parser.ParseExpr(expr); err != nil {
			res.AddError(diagnostic.CodeInvalidDefault,
				fmt.Sprintf("default %q is not a Go expression: %v", expr, err), decl.ID.Name, name)

			continue
		}

		if prop.HasDefault && prop.Default != expr {
			res.AddWarning(diagnostic.CodeInvalidDefault,
				fmt.Sprintf("configured default %q is ignored, the accessor declares %q", expr, prop.Default),
				decl.ID.Name, name)
		}
	}
}

// interfaceNames lists every interface of the loaded packages, qualified
// by package name.
func interfaceNames(graph *analyze.TypeGraph) []string {
	var names []string

	for _, pkg := range graph.Packages {
		for _, name := range pkg.Interfaces {
			names = append(names, name, pkg.Name+"."+name)
		}
	}

	slices.Sort(names)

	return slices.Compact(names)
}

func propertyNames(decl *analyze.TypeDecl) []string {
	names := make([]string, 0, len(decl.Properties))
	for _, p := range decl.Properties {
		names = append(names, p.Name)
	}

	return names
}
