package main

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"
)

const version = "0.1.0"

// Options holds every command-line setting.
type Options struct {
	Action string

	// Global
	Config string
	Debug  bool
	Dump   bool

	// Generation
	Patterns []string
	Types    []string
	OutDir   string
	Suffix   string
	Jobs     int

	// Init
	Force bool
}

// Handle parses args and returns the selected command with its options.
func Handle(args []string) (string, *Options, error) {
	opts := &Options{}

	app := kingpin.New("builder-generator", "Generates builders and immutable values for Go interfaces.")

	app.Flag("config", "Path to builder.yaml").
		Short('c').
		Envar("BUILDER_GENERATOR_CONFIG").
		StringVar(&opts.Config)

	app.Flag("debug", "Enable debug output").
		Short('d').
		Envar("BUILDER_GENERATOR_DEBUG").
		BoolVar(&opts.Debug)

	genCmd := app.Command("gen", "Generate builder files").Default()
	checkCmd := app.Command("check", "Fail when generated builder files are stale")
	initCmd := app.Command("init", "Write a builder.yaml for the selected interfaces")

	for _, cmd := range []*kingpin.CmdClause{genCmd, checkCmd, initCmd} {
		handleSelectionFlags(cmd, opts)
	}

	for _, cmd := range []*kingpin.CmdClause{genCmd, checkCmd} {
		handleOutputFlags(cmd, opts)
	}

	initCmd.Flag("force", "Overwrite an existing config file").
		BoolVar(&opts.Force)

	app.Version(version)
	app.HelpFlag.Short('h')
	app.VersionFlag.Short('v')

	cmd, err := app.Parse(args)
	if err != nil {
		return "", nil, fmt.Errorf("unable to parse command: %w", err)
	}

	opts.Action = cmd

	return cmd, opts, nil
}

func handleSelectionFlags(cmd *kingpin.CmdClause, opts *Options) {
	cmd.Arg("packages", "Package patterns to load").
		Default(".").
		StringsVar(&opts.Patterns)

	cmd.Flag("type", "Generate this interface even without a builder:generate directive (repeatable)").
		Short('t').
		StringsVar(&opts.Types)

	cmd.Flag("dump", "Dump the analyzed declarations to stderr").
		BoolVar(&opts.Dump)
}

func handleOutputFlags(cmd *kingpin.CmdClause, opts *Options) {
	cmd.Flag("out", "Write every file into this directory instead of its package directory").
		Short('o').
		StringVar(&opts.OutDir)

	cmd.Flag("suffix", "Generated file name suffix").
		StringVar(&opts.Suffix)

	cmd.Flag("jobs", "Declarations generated concurrently").
		Short('j').
		Default("0").
		IntVar(&opts.Jobs)
}
