package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"builder-generator/internal/analyze"
	"builder-generator/internal/config"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/gen"
)

// defaultConfigPath is read when --config is not given and the file exists.
const defaultConfigPath = "builder.yaml"

// ErrStale is returned by check when a generated file is missing or differs.
var ErrStale = errors.New("generated files are stale")

// dumper prints declarations without pointer addresses so dumps diff cleanly.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                8,
}

// runner executes one command.
type runner struct {
	opts   *Options
	log    *logrus.Logger
	report *reporter
	dump   io.Writer
}

func newRunner(opts *Options, log *logrus.Logger) *runner {
	return &runner{
		opts:   opts,
		log:    log,
		report: &reporter{log: log},
		dump:   os.Stderr,
	}
}

// loadConfig reads the config file. Without --config, builder.yaml is used
// when present.
func (r *runner) loadConfig() (*config.File, error) {
	path := r.opts.Config
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			return config.Default(), nil
		}

		path = defaultConfigPath
	}

	r.log.WithField("path", path).Debug("loading config")

	return config.LoadFile(path)
}

// analyze loads the packages and applies cfg to the selected declarations.
func (r *runner) analyze(cfg *config.File) (*analyze.TypeGraph, error) {
	types := append(cfg.TypeNames(), r.opts.Types...)

	analyzer := analyze.NewAnalyzer(
		analyze.WithTypes(types...),
		analyze.WithBuilderNames(cfg.BuilderNames()),
	)

	graph, err := analyzer.LoadPackages(r.opts.Patterns...)
	if err != nil {
		return nil, err
	}

	r.report.report(&graph.Diagnostics)

	if len(graph.Decls) == 0 {
		r.report.Report(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticWarning,
			Code:     diagnostic.CodeNoTypes,
			Message:  "no interfaces selected for generation",
		})
	}

	validation := config.Validate(cfg, graph)
	r.report.report(validation)

	if validation.HasErrors() {
		return nil, fmt.Errorf("invalid config: %w", validation.Error())
	}

	if err := config.Apply(cfg, graph); err != nil {
		return nil, err
	}

	if r.opts.Dump {
		dumper.Fdump(r.dump, graph.Decls)
	}

	r.log.WithField("declarations", len(graph.Decls)).Debug("analysis complete")

	return graph, nil
}

func (r *runner) generator(cfg *config.File) *gen.Generator {
	suffix := cfg.Output.Suffix
	if r.opts.Suffix != "" {
		suffix = r.opts.Suffix
	}

	outDir := cfg.Output.Dir
	if r.opts.OutDir != "" {
		outDir = r.opts.OutDir
	}

	return gen.NewGenerator(
		gen.WithLogger(newLogger(r.log)),
		gen.WithSuffix(suffix),
		gen.WithOutputDir(outDir),
		gen.WithJobs(r.opts.Jobs),
	)
}

// generate runs analysis and generation and returns the rendered files.
func (r *runner) generate(ctx context.Context) ([]gen.GeneratedFile, error) {
	cfg, err := r.loadConfig()
	if err != nil {
		return nil, err
	}

	graph, err := r.analyze(cfg)
	if err != nil {
		return nil, err
	}

	files, err := r.generator(cfg).GenerateAll(ctx, graph.Decls, r.report)
	if err != nil {
		return files, err
	}

	if r.report.errors > 0 {
		return files, fmt.Errorf("%d problems reported", r.report.errors)
	}

	return files, nil
}

// Gen writes every generated file.
func (r *runner) Gen(ctx context.Context) error {
	files, genErr := r.generate(ctx)

	// Builders that did generate are written even when others failed.
	written, err := gen.WriteFiles(files)
	if err != nil {
		return err
	}

	for _, path := range written {
		r.log.WithField("file", path).Debug("wrote builder")
	}

	r.log.WithFields(logrus.Fields{"files": len(files), "written": len(written)}).Info("generation complete")

	return genErr
}

// Check compares generated files with the ones on disk.
func (r *runner) Check(ctx context.Context) error {
	files, err := r.generate(ctx)
	if err != nil {
		return err
	}

	stale := 0

	for _, f := range files {
		current, err := os.ReadFile(f.Path())
		if err != nil || !bytes.Equal(current, f.Content) {
			stale++

			r.log.WithField("file", f.Path()).Warn("generated file is out of date")
		}
	}

	if stale > 0 {
		return fmt.Errorf("%d of %d files: %w", stale, len(files), ErrStale)
	}

	r.log.WithField("files", len(files)).Info("generated files are up to date")

	return nil
}

// Init writes a config file listing the selected interfaces.
func (r *runner) Init() error {
	path := r.opts.Config
	if path == "" {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); err == nil && !r.opts.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	analyzer := analyze.NewAnalyzer(analyze.WithTypes(r.opts.Types...))

	graph, err := analyzer.LoadPackages(r.opts.Patterns...)
	if err != nil {
		return err
	}

	r.report.report(&graph.Diagnostics)

	if r.opts.Dump {
		dumper.Fdump(r.dump, graph.Decls)
	}

	cfg := config.FromGraph(graph)
	if err := config.WriteFile(cfg, path); err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{"path": path, "types": len(cfg.Types)}).Info("config written")

	return nil
}
