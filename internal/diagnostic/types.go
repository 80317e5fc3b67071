package diagnostic

import (
	"errors"
	"strings"

	"go.uber.org/multierr"

	"builder-generator/internal/common"
)

// Severity of a diagnostic. Only errors stop generation.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic codes.
const (
	CodeUnsupportedType   = "unsupported_type"
	CodeUnsupportedMethod = "unsupported_method"
	CodeReservedName      = "reserved_name"
	CodeNameConflict      = "name_conflict"
	CodeTypeCheck         = "type_check"
	CodeUnknownType       = "unknown_type"
	CodeUnknownProperty   = "unknown_property"
	CodeInvalidDefault    = "invalid_default"
	CodeNoTypes           = "no_types"
	CodeInvalidConfig     = "invalid_config"
	CodeOverride          = "override"
)

// Diagnostic is one finding about a declaration, one of its properties, or
// the configuration.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Code     string
	Message  string
	// TypeName and Property locate the finding; both may be empty.
	TypeName string
	Property string
	// Suggestions are known names close to a name that did not resolve.
	Suggestions []string
}

// String renders "[Type] Property: [code] message (did you mean X?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.TypeName != "" {
		b.WriteString("[" + d.TypeName + "]")
	}

	if d.Property != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(d.Property)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		b.WriteString("[" + d.Code + "] ")
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(d.Suggestions, ", ") + "?)")
	}

	return b.String()
}

// Reporter receives diagnostics. The planning core reports through it and
// never logs on its own.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Diagnostics collects the findings of one run, grouped by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

var _ Reporter = (*Diagnostics)(nil)

// Report files d under its severity.
func (d *Diagnostics) Report(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

func (d *Diagnostics) AddError(code, message, typeName, property string) {
	d.add(DiagnosticError, code, message, typeName, property)
}

func (d *Diagnostics) AddWarning(code, message, typeName, property string) {
	d.add(DiagnosticWarning, code, message, typeName, property)
}

func (d *Diagnostics) AddInfo(code, message, typeName, property string) {
	d.add(DiagnosticInfo, code, message, typeName, property)
}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, typeName, property string) {
	d.Report(Diagnostic{Severity: sev, Code: code, Message: message, TypeName: typeName, Property: property})
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// ReplayTo sends every diagnostic to r, errors first.
func (d *Diagnostics) ReplayTo(r Reporter) {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			r.Report(diag)
		}
	}
}

// Error combines the error diagnostics into one error, or returns nil when
// there are none. multierr.Errors splits it back up.
func (d *Diagnostics) Error() error {
	var err error
	for _, e := range d.Errors {
		err = multierr.Append(err, errors.New(e.String()))
	}

	return err
}
