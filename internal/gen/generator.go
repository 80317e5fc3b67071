package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"path/filepath"
	"runtime"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/plan"
)

// DefaultSuffix is appended to the snake_case type name to form the
// generated file name.
const DefaultSuffix = "_builder.go"

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger generation progress is reported to.
func WithLogger(log logr.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithSuffix sets the generated file name suffix.
func WithSuffix(suffix string) Option {
	return func(g *Generator) {
		if suffix != "" {
			g.suffix = suffix
		}
	}
}

// WithOutputDir writes every file into dir instead of the directory of the
// declaring package.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// WithJobs bounds the number of declarations planned and rendered
// concurrently.
func WithJobs(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.jobs = n
		}
	}
}

// Generator renders builder files.
type Generator struct {
	log       logr.Logger
	suffix    string
	outputDir string
	jobs      int
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		log:    logr.Discard(),
		suffix: DefaultSuffix,
		jobs:   runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// TypeName is the interface the file builds.
	TypeName string
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "line_item_builder.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Filename returns the file name generated for typeName.
func (g *Generator) Filename(typeName string) string {
	return common.SnakeCase(typeName) + g.suffix
}

// Generate renders the file of one planned builder. dir is where the file
// belongs when no output directory is configured.
//
// When the rendered source does not parse, the unformatted file is
// returned together with the error, and a copy is written next to the
// output for inspection.
func (g *Generator) Generate(spec *plan.BuilderSpec, dir string) (*GeneratedFile, error) {
	file := &GeneratedFile{
		TypeName: spec.TypeName,
		Dir:      dir,
		Filename: g.Filename(spec.TypeName),
	}

	if g.outputDir != "" {
		file.Dir = g.outputDir
	}

	var buf bytes.Buffer
	if err := builderTemplate.Execute(&buf, newTemplateData(spec)); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if werr := writeSidecar(file, buf.Bytes()); werr != nil {
			g.log.V(1).Info("could not write unformatted source", "file", file.Filename, "error", werr.Error())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting %s: %w", file.Filename, err)
	}

	file.Content = formatted

	return file, nil
}

// Plan plans decl and renders its file.
func (g *Generator) Plan(decl *analyze.TypeDecl, reporter diagnostic.Reporter) (*GeneratedFile, error) {
	spec, err := plan.Plan(decl, reporter)
	if err != nil {
		return nil, err
	}

	g.log.V(1).Info("planned builder", "type", decl.ID.String(), "builder", spec.BuilderName,
		"properties", len(spec.Members), "required", len(spec.Required))

	return g.Generate(spec, decl.Dir)
}

// GenerateAll plans and renders every declaration concurrently. Diagnostics
// are replayed to reporter in declaration order once all workers are done.
// Every declaration is attempted; the returned error combines the failures.
// Files come back with nested types ahead of the types that contain them.
func (g *Generator) GenerateAll(ctx context.Context, decls []*analyze.TypeDecl, reporter diagnostic.Reporter) ([]GeneratedFile, error) {
	if reporter == nil {
		reporter = diagnostic.Discard
	}

	order := dependencyOrder(decls)

	results := make([]*GeneratedFile, len(order))
	errs := make([]error, len(order))
	diags := make([]diagnostic.Diagnostics, len(order))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.jobs)

	for i, decl := range order {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			results[i], errs[i] = g.Plan(decl, &diags[i])

			return nil
		})
	}

	_ = grp.Wait()

	var (
		files []GeneratedFile
		err   error
	)

	for i, decl := range order {
		diags[i].ReplayTo(reporter)

		if errs[i] != nil {
			err = multierr.Append(err, errs[i])
			g.log.Info("skipping builder", "type", decl.ID.String(), "error", errs[i].Error())

			continue
		}

		files = append(files, *results[i])
		g.log.Info("generated builder", "type", decl.ID.String(), "file", results[i].Path())
	}

	return files, err
}
