package codepdf

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// StdinName is the CLI token that triggers reading from standard input.
const StdinName = "-"

// stdinDisplayName is shown in headings and used for default output names.
const stdinDisplayName = "stdin"

// Kind classifies an input as markdown or code.
type Kind int

const (
	KindCode Kind = iota
	KindMarkdown
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	if k == KindMarkdown {
		return "markdown"
	}
	return "code"
}

// Source is one input to the pipeline: a file path (or StdinName), its raw
// content, and its detected classification. Immutable after creation.
type Source struct {
	Name     string // path as given on the command line, or StdinName
	Content  string
	Kind     Kind
	Language string // chroma lexer name; empty for markdown inputs
}

// DisplayName returns the basename of the source, or "stdin" for stdin input.
func (s Source) DisplayName() string {
	if s.Name == StdinName || s.Name == "" {
		return stdinDisplayName
	}
	return filepath.Base(s.Name)
}

// Fragment is the rendered HTML representation of a single input, paired
// with its originating source for ordering and debugging.
type Fragment struct {
	Source Source
	HTML   string
}

// OutputFormat selects the output artifact type.
type OutputFormat int

const (
	FormatPDF OutputFormat = iota
	FormatHTML
)

// String returns a human-readable format name.
func (f OutputFormat) String() string {
	if f == FormatHTML {
		return "html"
	}
	return "pdf"
}

// OutputTarget is the resolved output path and format.
type OutputTarget struct {
	Path   string
	Format OutputFormat
}

// htmlExtensions are the output extensions that imply HTML format.
var htmlExtensions = []string{".htm", ".html"}

// ResolveTarget computes the effective output target. The format is HTML
// when the path extension is .htm/.html or htmlMode is set; otherwise PDF.
// With no explicit path, the target derives from the first input's basename.
func ResolveTarget(firstInput, explicitPath string, htmlMode bool) OutputTarget {
	path := explicitPath
	if path == "" {
		name := firstInput
		if name == StdinName || name == "" {
			name = stdinDisplayName
		}
		base := name
		// A dotfile like .bashrc is all extension; keep the name whole
		// instead of producing a hidden ".pdf".
		if ext := filepath.Ext(name); ext != "" && ext != filepath.Base(name) {
			base = strings.TrimSuffix(name, ext)
		}
		if htmlMode {
			path = base + ".html"
		} else {
			path = base + ".pdf"
		}
	}

	format := FormatPDF
	if htmlMode || hasHTMLExtension(path) {
		format = FormatHTML
	}
	return OutputTarget{Path: path, Format: format}
}

// hasHTMLExtension reports whether the path ends in .htm or .html
// (case-insensitive).
func hasHTMLExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range htmlExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "default"

// RenderOptions is the resolved, immutable configuration snapshot for one
// invocation. Build it with ResolveOptions; never mutate it afterwards.
type RenderOptions struct {
	Style         string // chroma style name for highlighted code
	LineNumbers   bool   // show line numbers in code fragments
	ForceMarkdown bool   // highlight markdown source instead of rendering it
	HTML          bool   // force HTML output regardless of path extension
	Title         string // document title; empty derives from first input
}

// DefaultRenderOptions returns the built-in defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Style: DefaultStyle}
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	page    *PageSettings
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("codepdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithPageSettings sets PDF page dimensions. Nil means defaults.
func WithPageSettings(p *PageSettings) Option {
	return func(s *Service) {
		s.cfg.page = p
	}
}
