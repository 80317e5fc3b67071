package plan

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

// Plan classifies every property of decl, runs the strategy of its kind and
// composes the result. Every unsupported property is reported before
// planning aborts, and the returned error combines all of them.
//
// Plan keeps no state between calls and may run concurrently for
// different declarations.
func Plan(decl *analyze.TypeDecl, reporter diagnostic.Reporter) (*BuilderSpec, error) {
	if reporter == nil {
		reporter = diagnostic.Discard
	}

	typeName := decl.ID.Name

	var (
		descs []PropertyDescriptor
		errs  error
	)

	for _, in := range decl.Properties {
		d, err := Classify(in)
		if err != nil {
			code := diagnostic.CodeUnsupportedType
			if _, reserved := reservedNames[in.Name]; reserved {
				code = diagnostic.CodeReservedName
			}

			reporter.Report(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     code,
				Message:  err.Error(),
				TypeName: typeName,
				Property: in.Name,
			})

			errs = multierr.Append(errs, err)

			continue
		}

		d.Construction = SelectConstruction(d)
		descs = append(descs, d)
	}

	if errs != nil {
		return nil, fmt.Errorf("%s: %w", typeName, errs)
	}

	owner := Owner{
		TypeName:    typeName,
		BuilderName: decl.BuilderName,
		Overrides:   make(map[string]bool, len(decl.Overrides)),
	}
	for _, name := range decl.Overrides {
		owner.Overrides[name] = true
	}

	members := make([]BuilderMemberSpec, 0, len(descs))

	for _, d := range descs {
		strategy, err := StrategyFor(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", typeName, d.Name, err)
		}

		m := strategy.Members(d, owner)

		for _, method := range m.Methods {
			if method.Overridden() {
				reporter.Report(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticInfo,
					Code:     diagnostic.CodeOverride,
					Message:  fmt.Sprintf("%s is user-defined; generated implementation emitted as %s", method.Name, method.Emitted),
					TypeName: typeName,
					Property: d.Name,
				})
			}
		}

		members = append(members, m)
	}

	spec, err := Compose(decl, members)
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			for _, name := range conflict.Names {
				reporter.Report(diagnostic.Diagnostic{
					Severity: diagnostic.DiagnosticError,
					Code:     diagnostic.CodeNameConflict,
					Message:  "name conflict: " + name,
					TypeName: typeName,
				})
			}
		}

		return nil, err
	}

	return spec, nil
}
