package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	codepdf "github.com/welbornprod/codepdf"
	"github.com/welbornprod/codepdf/internal/config"
)

// cliFlags holds the parsed command line flags.
type cliFlags struct {
	forceMD     bool
	htmlMode    bool
	lineNumbers bool
	noConfig    bool
	listStyles  bool
	debug       bool
	version     bool
	output      string
	style       string
	title       string
}

// usageText matches the documented CLI surface.
const usageText = `Usage:
  codepdf -h | -S | -v
  codepdf [FILE...] [-f] [-H] [-l] [-n] [-o file] [-s style] [-t title] [-D]

FILE names the files to convert, or - for stdin. With no names, stdin is used.

Flags:
`

// newFlagSet builds the codepdf flag set bound to f.
func newFlagSet(f *cliFlags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("codepdf", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVarP(&f.forceMD, "forcemd", "f", false, "highlight markdown syntax instead of converting it to HTML")
	fs.BoolVarP(&f.htmlMode, "html", "H", false, "output HTML instead of PDF (.htm/.html output extensions set this automatically)")
	fs.BoolVarP(&f.lineNumbers, "linenumbers", "l", false, "use line numbers")
	fs.BoolVarP(&f.noConfig, "noconfig", "n", false, "skip the config file")
	fs.StringVarP(&f.output, "out", "o", "", "output file name (default: <input_basename>.pdf)")
	fs.StringVarP(&f.style, "style", "s", "", "style name to use for code files (default: "+codepdf.DefaultStyle+")")
	fs.BoolVarP(&f.listStyles, "styles", "S", false, "print all known style names")
	fs.StringVarP(&f.title, "title", "t", "", "title for the document (default: <input_filename>)")
	fs.BoolVarP(&f.debug, "debug", "D", false, "print some debug info while running")
	fs.BoolVarP(&f.version, "version", "v", false, "show version")

	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fmt.Fprint(stderr, fs.FlagUsages())
	}
	return fs
}

// parseFlags parses the arguments after the program name. The returned
// FlagSet answers which flags were explicitly set.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, *flag.FlagSet, error) {
	f := &cliFlags{}
	fs := newFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	return f, fs.Args(), fs, nil
}

// layer returns the CLI precedence layer: only flags the user explicitly
// set participate in the merge, so config values survive unset flags.
func (f *cliFlags) layer(fs *flag.FlagSet) codepdf.Layer {
	var l codepdf.Layer
	if fs.Changed("style") {
		l.Style = &f.style
	}
	if fs.Changed("linenumbers") {
		l.LineNumbers = &f.lineNumbers
	}
	if fs.Changed("forcemd") {
		l.ForceMarkdown = &f.forceMD
	}
	if fs.Changed("html") {
		l.HTML = &f.htmlMode
	}
	if fs.Changed("title") {
		l.Title = &f.title
	}
	return l
}

// configLayer converts loaded config values to a precedence layer.
func configLayer(cfg *config.Config) codepdf.Layer {
	return codepdf.Layer{
		Style:         cfg.Style,
		LineNumbers:   cfg.LineNumbers,
		ForceMarkdown: cfg.ForceMD,
		HTML:          cfg.HTML,
		Title:         cfg.Title,
	}
}
