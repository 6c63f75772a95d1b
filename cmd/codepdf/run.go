package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	codepdf "github.com/welbornprod/codepdf"
	"github.com/welbornprod/codepdf/internal/config"
)

// converter is the slice of the codepdf Service the CLI needs; tests inject
// fakes through it.
type converter interface {
	Convert(ctx context.Context, sources []codepdf.Source, opts codepdf.RenderOptions, target codepdf.OutputTarget) error
}

// run parses arguments, resolves options, and drives the conversion.
// On success it prints the resolved output path to stdout.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, svc converter) error {
	flags, inputs, fs, err := parseFlags(args[1:], stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.version {
		fmt.Fprintf(stdout, "%s v. %s\n", appName, Version)
		return nil
	}
	if flags.listStyles {
		printStyles(stdout)
		return nil
	}

	dbg := debugLog{w: stderr, enabled: flags.debug}

	layers := []codepdf.Layer{flags.layer(fs)}
	if flags.noConfig {
		dbg.printf("config file skipped (--noconfig)")
	} else if path, ok := config.Discover(config.CandidateDirs()); ok {
		dbg.printf("config file: %s", path)
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		layers = append(layers, configLayer(cfg))
	}
	opts := codepdf.ResolveOptions(layers...)
	dbg.printf("options: style=%s linenumbers=%v forcemd=%v html=%v title=%q",
		opts.Style, opts.LineNumbers, opts.ForceMarkdown, opts.HTML, opts.Title)

	maybePrintStdinHint(inputs, stdin, stderr)

	sources, err := codepdf.LoadSources(inputs, stdin, opts)
	if err != nil {
		return err
	}
	for _, src := range sources {
		dbg.printf("input %s: kind=%s language=%s", src.DisplayName(), src.Kind, src.Language)
	}

	var first string
	if len(inputs) > 0 {
		first = inputs[0]
	}
	target := codepdf.ResolveTarget(first, flags.output, opts.HTML)
	dbg.printf("output: %s (%s)", target.Path, target.Format)

	if err := svc.Convert(ctx, sources, opts, target); err != nil {
		return err
	}

	fmt.Fprintln(stdout, target.Path)
	return nil
}

// printStyles lists all known style names.
func printStyles(w io.Writer) {
	fmt.Fprintln(w, "\nStyle names:")
	for _, name := range codepdf.StyleNames() {
		fmt.Fprintf(w, "    %s\n", name)
	}
}

// maybePrintStdinHint tells interactive users that stdin is being read.
func maybePrintStdinHint(inputs []string, stdin io.Reader, stderr io.Writer) {
	if !wantsStdin(inputs) {
		return
	}
	f, ok := stdin.(*os.File)
	if !ok {
		return
	}
	if isTerminal(f) && isTerminal(os.Stdout) {
		fmt.Fprintln(stderr, "\nReading from stdin until end of file (Ctrl + D)...")
	}
}

// wantsStdin reports whether this invocation reads standard input.
func wantsStdin(inputs []string) bool {
	if len(inputs) == 0 {
		return true
	}
	for _, name := range inputs {
		if name == codepdf.StdinName {
			return true
		}
	}
	return false
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// debugLog prints diagnostics to stderr when --debug is set.
type debugLog struct {
	w       io.Writer
	enabled bool
}

func (d debugLog) printf(format string, args ...any) {
	if !d.enabled {
		return
	}
	fmt.Fprintf(d.w, "codepdf: "+format+"\n", args...)
}
