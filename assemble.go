package codepdf

import (
	"html"
	"strings"
)

// DefaultTitle is used when no title is configured and the first input has
// no identifiable name (stdin only).
const DefaultTitle = "CodePDF Output"

// fragmentSeparator visually divides consecutive file fragments.
const fragmentSeparator = `<hr class="nv">`

// baselineCSS covers general document layout; the chroma style definitions
// for highlighted code are appended next to it in the single style block.
const baselineCSS = `body {
  font-family: sans-serif;
}
h2 {
  margin-bottom: 0.25em;
}
.hilight pre {
  white-space: pre-wrap;
  word-wrap: break-word;
}
hr.nv {
  border-style: hidden;
  height: 2px;
  background: #f1f1f1;
  margin-top: 25px;
}`

// Assemble concatenates fragments into one complete HTML document: a single
// head with the effective title and one style block, then the fragments in
// input order. Assembly is a single linear fold with no error conditions.
func Assemble(fragments []Fragment, styleCSS string, opts RenderOptions) string {
	title := documentTitle(fragments, opts)

	bodies := make([]string, 0, len(fragments))
	for _, f := range fragments {
		bodies = append(bodies, f.HTML)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString(`<style type="text/css">` + "\n")
	b.WriteString(baselineCSS)
	b.WriteString("\n")
	if styleCSS != "" {
		b.WriteString(styleCSS)
		b.WriteString("\n")
	}
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(strings.Join(bodies, "\n"+fragmentSeparator+"\n"))
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// documentTitle computes the effective title: the configured title if set,
// else the first input's display name, else a generic default when only
// stdin is present.
func documentTitle(fragments []Fragment, opts RenderOptions) string {
	if opts.Title != "" {
		return opts.Title
	}
	if len(fragments) > 0 && fragments[0].Source.Name != StdinName && fragments[0].Source.Name != "" {
		return fragments[0].Source.DisplayName()
	}
	return DefaultTitle
}
