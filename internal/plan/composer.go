package plan

import (
	"fmt"
	"slices"
	"strings"

	"builder-generator/internal/analyze"
)

// BuilderSpec is the complete plan of one generated file.
type BuilderSpec struct {
	TypeName    string
	BuilderName string
	// ValueName is the unexported type implementing TypeName.
	ValueName string
	PkgName   string
	PkgPath   string
	Doc       string
	Imports   []analyze.Import
	// Members are in declaration order.
	Members []BuilderMemberSpec
	// Required lists the required properties in declaration order.
	Required []string
	// Overrides are the methods the user declared on the builder.
	Overrides []string
}

// HasRequired reports whether Build checks for unset properties.
func (s *BuilderSpec) HasRequired() bool {
	return len(s.Required) > 0
}

// Member returns the member of a property.
func (s *BuilderSpec) Member(property string) (*BuilderMemberSpec, bool) {
	for i := range s.Members {
		if s.Members[i].Property == property {
			return &s.Members[i], true
		}
	}

	return nil, false
}

// ConflictError reports generated names that collide with each other or
// with methods the user declared on the builder.
type ConflictError struct {
	Builder string
	Names   []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: conflicting names: %s", e.Builder, strings.Join(e.Names, ", "))
}

// Compose assembles the per-property members of decl into a BuilderSpec.
func Compose(decl *analyze.TypeDecl, members []BuilderMemberSpec) (*BuilderSpec, error) {
	spec := &BuilderSpec{
		TypeName:    decl.ID.Name,
		BuilderName: decl.BuilderName,
		ValueName:   valueName(decl.ID.Name),
		PkgName:     decl.PkgName,
		PkgPath:     decl.ID.PkgPath,
		Doc:         decl.Doc,
		Members:     members,
		Overrides:   slices.Clone(decl.Overrides),
	}

	for _, m := range members {
		if m.Required {
			spec.Required = append(spec.Required, m.Property)
		}
	}

	if conflicts := findConflicts(spec); len(conflicts) > 0 {
		return nil, &ConflictError{Builder: spec.BuilderName, Names: conflicts}
	}

	spec.Imports = composeImports(decl.ID.PkgPath, members)

	return spec, nil
}

// findConflicts checks the builder's field and method namespace.
func findConflicts(spec *BuilderSpec) []string {
	owner := make(map[string]string)

	var conflicts []string

	claim := func(name, by string) {
		if prev, ok := owner[name]; ok && prev != by {
			conflicts = append(conflicts, fmt.Sprintf("%s (%s and %s)", name, prev, by))
			return
		}

		owner[name] = by
	}

	claim("err", "builder")

	for _, name := range builderMethods {
		claim(name, "builder")
	}

	overridable := make(map[string]bool)

	for _, m := range spec.Members {
		if m.ValueField.Name == m.Property {
			conflicts = append(conflicts, fmt.Sprintf("%s (field and accessor of %s)", m.Property, spec.ValueName))
		}

		for _, f := range m.Fields {
			claim(f.Name, m.Property)
		}

		for _, method := range m.Methods {
			claim(method.Emitted, m.Property)
		}

		for _, name := range m.Overridable {
			overridable[name] = true
		}
	}

	for _, name := range spec.Overrides {
		if overridable[name] {
			continue
		}

		if by, ok := owner[name]; ok {
			conflicts = append(conflicts, fmt.Sprintf("%s (%s and user method)", name, by))
		}
	}

	slices.Sort(conflicts)

	return slices.Compact(conflicts)
}

// composeImports merges member imports with the ones every file needs,
// sorted by path, dropping the generating package.
func composeImports(pkgPath string, members []BuilderMemberSpec) []analyze.Import {
	byPath := map[string]analyze.Import{
		RuntimePkgPath: {Name: "fb", Path: RuntimePkgPath},
		"strings":      {Name: "strings", Path: "strings"},
	}

	for _, m := range members {
		for _, imp := range m.Imports {
			if imp.Path == pkgPath {
				continue
			}

			byPath[imp.Path] = imp
		}
	}

	out := make([]analyze.Import, 0, len(byPath))
	for _, imp := range byPath {
		out = append(out, imp)
	}

	slices.SortFunc(out, func(a, b analyze.Import) int {
		return strings.Compare(a.Path, b.Path)
	})

	return out
}
