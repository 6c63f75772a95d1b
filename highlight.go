package codepdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeHighlighter abstracts syntax highlighting to allow fake
// implementations in tests.
type codeHighlighter interface {
	Highlight(ctx context.Context, code, language string, opts RenderOptions) (string, error)
	StyleCSS(name string) (string, error)
}

// chromaHighlighter highlights code using chroma's HTML formatter.
// Output uses CSS classes; the matching style definitions come from StyleCSS
// so the assembled document carries exactly one style block.
type chromaHighlighter struct{}

// Compile-time interface check.
var _ codeHighlighter = (*chromaHighlighter)(nil)

// Highlight renders code as an HTML fragment using the lexer named by
// language (plain-text fallback when unknown) and the resolved style.
func (h *chromaHighlighter) Highlight(ctx context.Context, code, language string, opts RenderOptions) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	style, err := lookupStyle(opts.Style)
	if err != nil {
		return "", err
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var buf strings.Builder
	if err := chromahtml.New(formatOptions(opts)...).Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}

// StyleCSS returns the CSS definitions for the named style. Calling it
// before rendering validates the style name up front.
func (h *chromaHighlighter) StyleCSS(name string) (string, error) {
	style, err := lookupStyle(name)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}

// formatOptions builds chroma HTML formatter options from render options.
func formatOptions(opts RenderOptions) []chromahtml.Option {
	fopts := []chromahtml.Option{chromahtml.WithClasses(true)}
	if opts.LineNumbers {
		fopts = append(fopts, chromahtml.WithLineNumbers(true))
	}
	return fopts
}

// lookupStyle resolves a style name against chroma's registry. The built-in
// default (and an empty name) maps to chroma's fallback style, which has no
// registry entry of its own. Unlike styles.Get, any other unknown name is an
// error rather than a silent fallback.
func lookupStyle(name string) (*chroma.Style, error) {
	key := strings.ToLower(name)
	if key == "" || key == DefaultStyle {
		return styles.Fallback, nil
	}
	if style, ok := styles.Registry[key]; ok {
		return style, nil
	}
	return nil, fmt.Errorf("%w: %q (expecting one of: %s)", ErrUnknownStyle, name, strings.Join(StyleNames(), ", "))
}

// StyleNames returns all known style names, sorted.
func StyleNames() []string {
	return styles.Names()
}
