package codepdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownRenderer abstracts markdown to HTML conversion.
type markdownRenderer interface {
	RenderMarkdown(ctx context.Context, content string, opts RenderOptions) (string, error)
}

// goldmarkRenderer converts markdown to HTML fragments using goldmark
// (pure Go). Fenced code blocks are highlighted through chroma with the same
// CSS-class output as standalone code fragments, so one style block covers
// both.
type goldmarkRenderer struct{}

// Compile-time interface check.
var _ markdownRenderer = (*goldmarkRenderer)(nil)

// newMarkdown builds a goldmark instance for the given render options.
func newMarkdown(opts RenderOptions) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(formatOptions(opts)...),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// WithUnsafe is omitted: raw HTML in inputs stays escaped.
		),
	)
}

// RenderMarkdown converts markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *goldmarkRenderer) RenderMarkdown(ctx context.Context, content string, opts RenderOptions) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := newMarkdown(opts).Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
