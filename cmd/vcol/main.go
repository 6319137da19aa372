// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command vcol adds virtual columns to a CSV or JSON Lines table.
//
// Usage:
//
//	vcol -input data.csv -rule "a + b" -target sum_result [-output out.csv]
//	vcol -input data.csv -manifest columns.yaml [-output out.csv]
//
// The result is written as CSV to -output, or to stdout. A rejected rule
// yields an empty table unless -strict is set, in which case the reason is
// logged and vcol exits with status 1. A manifest that cannot be loaded or
// validated always exits with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/toster3d/Recrutitment-task/config"
	"github.com/toster3d/Recrutitment-task/env"
	"github.com/toster3d/Recrutitment-task/exitcode"
	"github.com/toster3d/Recrutitment-task/logging"
	"github.com/toster3d/Recrutitment-task/manifest"
	"github.com/toster3d/Recrutitment-task/recovery"
	"github.com/toster3d/Recrutitment-task/table"
	"github.com/toster3d/Recrutitment-task/tableio"
	"github.com/toster3d/Recrutitment-task/virtualcolumn"
)

// Version is set at build time
var Version = "dev"

type options struct {
	input     string
	output    string
	rule      string
	target    string
	manifest  string
	config    string
	overwrite bool
	strict    bool
	version   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, &env.OSReader{}))
}

func run(args []string, stdout, stderr io.Writer, reader env.Reader) int {
	err := execute(args, stdout, stderr, reader)
	if errors.Is(err, flag.ErrHelp) {
		return exitcode.OK
	}
	return exitcode.Code(err)
}

func execute(args []string, stdout, stderr io.Writer, reader env.Reader) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "vcol: %v\n", err)
		}
		return exitcode.WithCode(err, exitcode.Usage)
	}
	if opts.version {
		fmt.Fprintf(stdout, "vcol %s\n", Version)
		return nil
	}

	cfg, err := config.Load(opts.config, reader)
	if err != nil {
		fmt.Fprintf(stderr, "vcol: failed to load configuration: %v\n", err)
		return err
	}
	if opts.overwrite {
		cfg.AllowOverwrite = true
	}

	logger := logging.New(append(cfg.LoggingOptions(), logging.WithOutput(stderr))...)
	ev := virtualcolumn.NewEvaluator(cfg.EvaluatorOptions(logger)...)

	in, err := tableio.Read(opts.input)
	if err != nil {
		logger.Error("failed to read input table", "path", opts.input, "error", err)
		return err
	}
	logger.Debug("input table loaded",
		"path", opts.input,
		"columns", in.NumColumns(),
		"rows", in.NumRows(),
	)

	var out *table.Table
	err = recovery.Guard(logger, func() error {
		out, err = apply(ev, in, opts)
		return err
	})
	switch {
	case errors.Is(err, recovery.ErrPanic):
		return err
	case err != nil && virtualcolumn.KindOf(err) == virtualcolumn.KindNone:
		logger.Error("failed to apply virtual columns", "error", err)
		return err
	case err != nil && opts.strict:
		logger.Error("virtual column rejected",
			"kind", string(virtualcolumn.KindOf(err)),
			"error", err,
		)
		return err
	case err != nil:
		logger.Warn("virtual column rejected, writing empty table", "error", err)
		out = table.Empty()
	}

	if opts.output == "" {
		err = tableio.WriteCSV(stdout, out)
	} else {
		err = tableio.Write(opts.output, out)
	}
	if err != nil {
		logger.Error("failed to write output table", "error", err)
		return err
	}
	return nil
}

func apply(ev *virtualcolumn.Evaluator, in *table.Table, opts options) (*table.Table, error) {
	if opts.manifest == "" {
		return ev.Apply(in, opts.rule, opts.target)
	}

	m, err := manifest.Load(opts.manifest)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", opts.manifest, err)
	}
	return m.Apply(ev, in)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("vcol", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "", "input table (.csv, .jsonl or .ndjson)")
	fs.StringVar(&opts.output, "output", "", "output CSV file (default stdout)")
	fs.StringVar(&opts.rule, "rule", "", `rule over two columns, for example "a + b"`)
	fs.StringVar(&opts.target, "target", "", "name of the column to add")
	fs.StringVar(&opts.manifest, "manifest", "", "YAML manifest of columns to add")
	fs.StringVar(&opts.config, "config", "", "config file (default: "+config.DefaultFile+" in the XDG config dirs)")
	fs.BoolVar(&opts.overwrite, "overwrite", false, "replace an existing column named like the target")
	fs.BoolVar(&opts.strict, "strict", false, "exit with status 1 instead of writing an empty table")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments %v", fs.Args())
	}
	if opts.version {
		return opts, nil
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	switch {
	case opts.input == "":
		return opts, errors.New("-input is required")
	case set["manifest"] && (set["rule"] || set["target"]):
		return opts, errors.New("-manifest cannot be combined with -rule or -target")
	case !set["manifest"] && !set["rule"]:
		return opts, errors.New("one of -rule or -manifest is required")
	}
	return opts, nil
}
