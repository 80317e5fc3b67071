package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/config"
	"builder-generator/internal/diagnostic"
)

const examplePkg = "../../examples/order"

func testLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	return l, &buf
}

func TestHandle_Defaults(t *testing.T) {
	cmd, opts, err := Handle([]string{})
	require.NoError(t, err)

	assert.Equal(t, "gen", cmd)
	assert.Equal(t, []string{"."}, opts.Patterns)
	assert.Equal(t, 0, opts.Jobs)
	assert.False(t, opts.Debug)
}

func TestHandle_Flags(t *testing.T) {
	cmd, opts, err := Handle([]string{
		"--config", "b.yaml", "--debug",
		"check", "./a", "./b",
		"--type", "order.Coupon", "-t", "Gift",
		"--out", "gen", "--suffix", "_b.go", "-j", "2", "--dump",
	})
	require.NoError(t, err)

	assert.Equal(t, "check", cmd)
	assert.Equal(t, "b.yaml", opts.Config)
	assert.True(t, opts.Debug)
	assert.True(t, opts.Dump)
	assert.Equal(t, []string{"./a", "./b"}, opts.Patterns)
	assert.Equal(t, []string{"order.Coupon", "Gift"}, opts.Types)
	assert.Equal(t, "gen", opts.OutDir)
	assert.Equal(t, "_b.go", opts.Suffix)
	assert.Equal(t, 2, opts.Jobs)
}

func TestHandle_Errors(t *testing.T) {
	_, _, err := Handle([]string{"init", "--out", "x"})
	assert.Error(t, err, "init does not write builders")

	_, _, err = Handle([]string{"gen", "--jobs", "many"})
	assert.Error(t, err)
}

func TestLogrusSink(t *testing.T) {
	l, buf := testLogger()
	l.SetLevel(logrus.InfoLevel)

	log := newLogger(l).WithName("gen").WithValues("run", 1)
	log.Info("generated builder", "type", "Order")
	log.V(1).Info("hidden")
	log.Error(assert.AnError, "failed", "type", "Address")

	out := buf.String()
	assert.Contains(t, out, `msg="generated builder"`)
	assert.Contains(t, out, "type=Order")
	assert.Contains(t, out, "logger=gen")
	assert.Contains(t, out, "run=1")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=error")

	l.SetLevel(logrus.DebugLevel)
	assert.True(t, log.V(1).Enabled())

	var _ logr.LogSink = (*logrusSink)(nil)
}

func TestReporter(t *testing.T) {
	l, buf := testLogger()
	r := &reporter{log: l}

	var diags diagnostic.Diagnostics
	diags.Report(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        diagnostic.CodeUnknownType,
		Message:     "type not found",
		TypeName:    "Ordr",
		Suggestions: []string{"Order"},
	})
	diags.AddWarning(diagnostic.CodeTypeCheck, "undefined: OrderBuilder", "", "")
	diags.AddInfo(diagnostic.CodeOverride, "user method", "Muted", "Items")

	r.report(&diags)
	r.report(nil)

	assert.Equal(t, 1, r.errors)

	out := buf.String()
	assert.Contains(t, out, "did you mean Order?")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "property=Items")
}

func TestRunner_CheckExamples(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}

	l, _ := testLogger()
	r := newRunner(&Options{Patterns: []string{examplePkg}}, l)

	require.NoError(t, r.Check(context.Background()))
}

func TestRunner_GenToOutputDir(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}

	out := t.TempDir()
	l, _ := testLogger()

	var dump bytes.Buffer

	r := newRunner(&Options{Patterns: []string{examplePkg}, OutDir: out, Suffix: "_gen.go", Dump: true}, l)
	r.dump = &dump

	require.NoError(t, r.Gen(context.Background()))

	for _, name := range []string{"order_gen.go", "address_gen.go", "muted_gen.go"} {
		assert.FileExists(t, filepath.Join(out, name))
	}

	assert.Contains(t, dump.String(), "OrderBuilder")

	r = newRunner(&Options{Patterns: []string{examplePkg}, OutDir: out, Suffix: "_gen.go"}, l)
	require.NoError(t, r.Check(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(out, "order_gen.go"), []byte("package order\n"), 0o644))
	assert.ErrorIs(t, r.Check(context.Background()), ErrStale)
}

func TestRunner_InitAndConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}

	path := filepath.Join(t.TempDir(), "builder.yaml")
	l, _ := testLogger()

	r := newRunner(&Options{Patterns: []string{examplePkg}, Config: path}, l)
	require.NoError(t, r.Init())
	assert.Error(t, r.Init(), "an existing config is kept")

	r.opts.Force = true
	require.NoError(t, r.Init())

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"order.Muted", "order.Order", "order.Address"}, cfg.TypeNames())

	order, ok := cfg.Type("order", "Order")
	require.True(t, ok)
	assert.Equal(t, "StatusPending", order.Defaults["Status"])

	// The written config drives a check of the checked-in files.
	require.NoError(t, newRunner(&Options{Patterns: []string{examplePkg}, Config: path}, l).Check(context.Background()))
}

func TestRunner_InvalidConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}

	path := filepath.Join(t.TempDir(), "builder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types:\n  - name: Ordr\n"), 0o644))

	l, buf := testLogger()
	r := newRunner(&Options{Patterns: []string{examplePkg}, Config: path}, l)

	_, err := r.generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, buf.String(), "did you mean Order")
}
