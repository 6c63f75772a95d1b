package codepdf

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkRenderer(t *testing.T) {
	r := &goldmarkRenderer{}
	ctx := context.Background()

	t.Run("renders headings", func(t *testing.T) {
		got, err := r.RenderMarkdown(ctx, "# Title\n\nbody text\n", DefaultRenderOptions())
		if err != nil {
			t.Fatalf("RenderMarkdown() error = %v", err)
		}
		if !strings.Contains(got, "<h1") || !strings.Contains(got, "Title") {
			t.Errorf("output missing heading: %q", got)
		}
		if !strings.Contains(got, "<p>body text</p>") {
			t.Errorf("output missing paragraph: %q", got)
		}
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		md := "| a | b |\n|---|---|\n| 1 | 2 |\n"
		got, err := r.RenderMarkdown(ctx, md, DefaultRenderOptions())
		if err != nil {
			t.Fatalf("RenderMarkdown() error = %v", err)
		}
		if !strings.Contains(got, "<table>") {
			t.Errorf("output missing table: %q", got)
		}
	})

	t.Run("fenced code blocks use chroma classes", func(t *testing.T) {
		md := "```go\npackage main\n```\n"
		got, err := r.RenderMarkdown(ctx, md, DefaultRenderOptions())
		if err != nil {
			t.Fatalf("RenderMarkdown() error = %v", err)
		}
		if !strings.Contains(got, `class="chroma"`) {
			t.Errorf("fenced code has no chroma class, got %q", got)
		}
	})

	t.Run("raw HTML is not passed through", func(t *testing.T) {
		got, err := r.RenderMarkdown(ctx, "<script>alert(1)</script>\n", DefaultRenderOptions())
		if err != nil {
			t.Fatalf("RenderMarkdown() error = %v", err)
		}
		if strings.Contains(got, "<script>") {
			t.Errorf("raw script tag passed through: %q", got)
		}
	})

	t.Run("cancelled context stops early", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.RenderMarkdown(cancelled, "# Title\n", DefaultRenderOptions())
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
