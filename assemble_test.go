package codepdf

import (
	"strings"
	"testing"
)

func TestAssemble(t *testing.T) {
	frag := func(name, body string) Fragment {
		return Fragment{Source: Source{Name: name}, HTML: body}
	}

	t.Run("preserves fragment order", func(t *testing.T) {
		doc := Assemble([]Fragment{
			frag("A.md", "<p>first</p>"),
			frag("B.py", "<p>second</p>"),
			frag("C.md", "<p>third</p>"),
		}, "", DefaultRenderOptions())

		first := strings.Index(doc, "first")
		second := strings.Index(doc, "second")
		third := strings.Index(doc, "third")
		if first < 0 || second < 0 || third < 0 {
			t.Fatalf("fragments missing from document:\n%s", doc)
		}
		if !(first < second && second < third) {
			t.Errorf("fragment order wrong: positions %d, %d, %d", first, second, third)
		}
	})

	t.Run("exactly one style block", func(t *testing.T) {
		doc := Assemble([]Fragment{frag("a.go", "<pre>x</pre>")}, ".chroma { color: red; }", DefaultRenderOptions())
		if got := strings.Count(doc, "<style"); got != 1 {
			t.Errorf("style block count = %d, want 1", got)
		}
		if !strings.Contains(doc, ".chroma { color: red; }") {
			t.Error("style definitions missing from style block")
		}
		if !strings.Contains(doc, "font-family: sans-serif") {
			t.Error("baseline stylesheet missing from style block")
		}
	})

	t.Run("separators between fragments only", func(t *testing.T) {
		doc := Assemble([]Fragment{
			frag("a.go", "<pre>a</pre>"),
			frag("b.go", "<pre>b</pre>"),
			frag("c.go", "<pre>c</pre>"),
		}, "", DefaultRenderOptions())
		if got := strings.Count(doc, fragmentSeparator); got != 2 {
			t.Errorf("separator count = %d, want 2", got)
		}
	})

	t.Run("title from options wins", func(t *testing.T) {
		opts := DefaultRenderOptions()
		opts.Title = "My Document"
		doc := Assemble([]Fragment{frag("a.go", "<pre>a</pre>")}, "", opts)
		if !strings.Contains(doc, "<title>My Document</title>") {
			t.Errorf("title missing:\n%s", doc)
		}
	})

	t.Run("title defaults to first input name", func(t *testing.T) {
		doc := Assemble([]Fragment{
			frag("/tmp/x/first.py", "<pre>a</pre>"),
			frag("second.py", "<pre>b</pre>"),
		}, "", DefaultRenderOptions())
		if !strings.Contains(doc, "<title>first.py</title>") {
			t.Errorf("title missing:\n%s", doc)
		}
	})

	t.Run("stdin-only input gets generic title", func(t *testing.T) {
		doc := Assemble([]Fragment{frag(StdinName, "<pre>a</pre>")}, "", DefaultRenderOptions())
		if !strings.Contains(doc, "<title>"+DefaultTitle+"</title>") {
			t.Errorf("generic title missing:\n%s", doc)
		}
	})

	t.Run("title is escaped", func(t *testing.T) {
		opts := DefaultRenderOptions()
		opts.Title = "<script>x</script>"
		doc := Assemble([]Fragment{frag("a.go", "<pre>a</pre>")}, "", opts)
		if strings.Contains(doc, "<title><script>") {
			t.Error("title not escaped")
		}
	})

	t.Run("deterministic output", func(t *testing.T) {
		fragments := []Fragment{frag("a.go", "<pre>a</pre>"), frag("b.md", "<p>b</p>")}
		one := Assemble(fragments, ".chroma {}", DefaultRenderOptions())
		two := Assemble(fragments, ".chroma {}", DefaultRenderOptions())
		if one != two {
			t.Error("identical inputs produced different documents")
		}
	})
}
