package codepdf

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// markdownExtensions are the input extensions rendered as markdown.
var markdownExtensions = []string{".md", ".markdown"}

// forcedMarkdownLexer is the language used when force-markdown is active.
const forcedMarkdownLexer = "markdown"

// Detect classifies an input by name and content. It returns the kind and,
// for code, the chroma lexer name to highlight with. Detection never fails:
// inputs that cannot be classified fall back to plain text, since one
// unclassifiable input must not abort the whole document.
func Detect(name, content string, forceMarkdown bool) (Kind, string) {
	if forceMarkdown {
		return KindCode, forcedMarkdownLexer
	}
	if isMarkdownName(name) {
		return KindMarkdown, ""
	}
	return KindCode, guessLanguage(name, content)
}

// isMarkdownName reports whether the file extension marks a markdown input.
func isMarkdownName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range markdownExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// guessLanguage picks a chroma lexer name for a code input: by filename
// first, then by content analysis, then the plain-text fallback.
func guessLanguage(name, content string) string {
	// Chroma sometimes matches a surprising lexer for .txt files, so pin
	// them to plain text.
	if strings.HasSuffix(strings.ToLower(name), ".txt") {
		return lexers.Fallback.Config().Name
	}

	if name != StdinName && name != "" {
		if lexer := lexers.Match(filepath.Base(name)); lexer != nil {
			return lexer.Config().Name
		}
	}

	if lexer := lexers.Analyse(content); lexer != nil {
		return lexer.Config().Name
	}

	return lexers.Fallback.Config().Name
}
