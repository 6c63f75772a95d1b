package codepdf

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode"
)

// divClass is the CSS class wrapping each file's rendered content.
const divClass = "hilight"

// permalinkSVG is a small chain-link icon used as a heading anchor.
const permalinkSVG = `<svg style="vertical-align: middle; display: inline;"
height="16" version="1.1" viewBox="0 0 16 16" width="16">
<path d="M4 9h1v1H4c-1.5 0-3-1.69-3-3.5S2.55 3 4 3h4c1.45 0 3 1.69 3 3.5 0
1.41-.91 2.72-2 3.25V8.59c.58-.45 1-1.27 1-2.09C10 5.22 8.98 4 8 4H4c-.98
0-2 1.22-2 2.5S3 9 4 9zm9-3h-1v1h1c1 0 2 1.22 2 2.5S13.98 12 13 12H9c-.98
0-2-1.22-2-2.5 0-.83.42-1.64 1-2.09V6.25c-1.09.53-2 1.84-2 3.25C6 11.31
7.55 13 9 13h4c1.45 0 3-1.69 3-3.5S14.5 6 13 6z">
</path></svg>`

// fragmentRenderer converts one source into an HTML fragment, dispatching to
// the markdown or highlighting collaborator and wrapping the result with a
// per-file heading.
type fragmentRenderer struct {
	markdown    markdownRenderer
	highlighter codeHighlighter
}

// Render produces the fragment for one source. It has no side effects and
// mutates no shared state.
func (r *fragmentRenderer) Render(ctx context.Context, src Source, opts RenderOptions) (Fragment, error) {
	var (
		body     string
		err      error
		cssClass string
	)

	switch src.Kind {
	case KindMarkdown:
		body, err = r.markdown.RenderMarkdown(ctx, src.Content, opts)
		cssClass = "markdown " + divClass
	default:
		body, err = r.highlighter.Highlight(ctx, src.Content, src.Language, opts)
		cssClass = divClass
	}
	if err != nil {
		return Fragment{}, err
	}

	name := src.DisplayName()
	linkID := elemID(name)
	markup := strings.Join([]string{
		`<div class="file">`,
		permalinkHTML(linkID),
		fmt.Sprintf(`<h2 id="%s" style="display: inline-block">%s</h2>`, linkID, html.EscapeString(name)),
		fmt.Sprintf(`<div class="%s">`, cssClass),
		body,
		`</div>`,
		`</div>`,
	}, "\n")

	return Fragment{Source: src, HTML: markup}, nil
}

// permalinkHTML returns the anchor markup for a heading permalink.
func permalinkHTML(linkID string) string {
	return strings.Join([]string{
		fmt.Sprintf(`<a href="#%s" style="text-decoration: none;">`, linkID),
		permalinkSVG,
		`</a>`,
	}, "\n")
}

// elemID transforms a display name into a slug usable as an element id.
// Non-alphanumeric characters are dropped and spaces become hyphens.
func elemID(s string) string {
	words := strings.Fields(s)
	cleaned := make([]string, 0, len(words))
	for _, word := range words {
		var b strings.Builder
		for _, c := range word {
			if unicode.IsLetter(c) || unicode.IsDigit(c) {
				b.WriteRune(c)
			}
		}
		cleaned = append(cleaned, b.String())
	}
	return strings.ToLower(strings.Join(cleaned, "-"))
}
