package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/welbornprod/codepdf/internal/config"
)

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, inputs, _, err := parseFlags(nil, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.forceMD || f.htmlMode || f.lineNumbers || f.noConfig || f.debug {
			t.Errorf("boolean flags not false by default: %+v", f)
		}
		if f.output != "" || f.style != "" || f.title != "" {
			t.Errorf("string flags not empty by default: %+v", f)
		}
		if len(inputs) != 0 {
			t.Errorf("inputs = %v, want none", inputs)
		}
	})

	t.Run("short flags", func(t *testing.T) {
		args := []string{"-f", "-H", "-l", "-o", "out.pdf", "-s", "monokai", "-t", "Docs", "a.go", "b.md"}
		f, inputs, _, err := parseFlags(args, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if !f.forceMD || !f.htmlMode || !f.lineNumbers {
			t.Errorf("boolean short flags not set: %+v", f)
		}
		if f.output != "out.pdf" || f.style != "monokai" || f.title != "Docs" {
			t.Errorf("string short flags wrong: %+v", f)
		}
		if len(inputs) != 2 || inputs[0] != "a.go" || inputs[1] != "b.md" {
			t.Errorf("inputs = %v", inputs)
		}
	})

	t.Run("long flags", func(t *testing.T) {
		args := []string{"--style", "dracula", "--linenumbers", "--noconfig"}
		f, _, _, err := parseFlags(args, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.style != "dracula" || !f.lineNumbers || !f.noConfig {
			t.Errorf("long flags wrong: %+v", f)
		}
	})

	t.Run("help returns ErrHelp", func(t *testing.T) {
		var buf strings.Builder
		_, _, _, err := parseFlags([]string{"--help"}, &buf)
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("error = %v, want flag.ErrHelp", err)
		}
		if !strings.Contains(buf.String(), "Usage:") {
			t.Error("usage text not printed")
		}
	})

	t.Run("unknown flag is an error", func(t *testing.T) {
		if _, _, _, err := parseFlags([]string{"--bogus"}, io.Discard); err == nil {
			t.Error("parseFlags() accepted an unknown flag")
		}
	})
}

func TestLayer(t *testing.T) {
	t.Run("only changed flags participate", func(t *testing.T) {
		f, _, fs, err := parseFlags([]string{"-s", "monokai"}, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		l := f.layer(fs)
		if l.Style == nil || *l.Style != "monokai" {
			t.Error("Style not carried into layer")
		}
		if l.LineNumbers != nil || l.ForceMarkdown != nil || l.HTML != nil || l.Title != nil {
			t.Errorf("unset flags leaked into layer: %+v", l)
		}
	})

	t.Run("explicit false is carried", func(t *testing.T) {
		f, _, fs, err := parseFlags([]string{"--linenumbers=false"}, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		l := f.layer(fs)
		if l.LineNumbers == nil || *l.LineNumbers {
			t.Error("explicit --linenumbers=false not carried into layer")
		}
	})
}

func TestConfigLayer(t *testing.T) {
	style := "solarized-dark"
	yes := true
	l := configLayer(&config.Config{Style: &style, HTML: &yes})
	if l.Style == nil || *l.Style != style {
		t.Error("Style not carried from config")
	}
	if l.HTML == nil || !*l.HTML {
		t.Error("HTML not carried from config")
	}
	if l.LineNumbers != nil || l.ForceMarkdown != nil || l.Title != nil {
		t.Errorf("unset config fields leaked into layer: %+v", l)
	}
}
