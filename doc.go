// Package codepdf converts code and markdown files into a single combined
// HTML or PDF document.
//
// # Quick Start
//
// Create a service, load inputs, convert, and close when done:
//
//	svc := codepdf.New()
//	defer svc.Close()
//
//	opts := codepdf.DefaultRenderOptions()
//	sources, err := codepdf.LoadSources([]string{"main.go", "README.md"}, os.Stdin, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	target := codepdf.ResolveTarget(sources[0].Name, "", opts.HTML)
//	if err := svc.Convert(ctx, sources, opts, target); err != nil {
//	    log.Fatal(err)
//	}
//
// # Conversion Pipeline
//
// The pipeline follows these stages:
//
//  1. Classification of each input as markdown or code (chroma lexer guessing)
//  2. Per-input rendering to an HTML fragment with a per-file heading
//     (Goldmark for markdown, chroma for code)
//  3. Assembly into one document with a single style block and title
//  4. Output as UTF-8 HTML, or PDF via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := codepdf.New(
//	    codepdf.WithTimeout(2 * time.Minute),
//	    codepdf.WithPageSettings(&codepdf.PageSettings{Size: "a4"}),
//	)
//
// Rendering behavior is controlled by RenderOptions, resolved once per
// invocation by merging CLI flags over config file values over defaults
// (see ResolveOptions and the internal/config package).
package codepdf
