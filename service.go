package codepdf

import (
	"context"
	"fmt"
)

// Service orchestrates the document assembly pipeline.
type Service struct {
	cfg         serviceConfig
	fragments   *fragmentRenderer
	highlighter codeHighlighter
	pdf         pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithPageSettings).
func New(opts ...Option) *Service {
	highlighter := &chromaHighlighter{}
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
		fragments: &fragmentRenderer{
			markdown:    &goldmarkRenderer{},
			highlighter: highlighter,
		},
		highlighter: highlighter,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Render runs detection results through fragment rendering and assembly,
// returning the complete HTML document. The style name is validated before
// any rendering happens, so an unknown style aborts with no work done.
// Identical inputs and options always produce identical output.
func (s *Service) Render(ctx context.Context, sources []Source, opts RenderOptions) (string, error) {
	if err := s.cfg.page.Validate(); err != nil {
		return "", err
	}

	styleCSS, err := s.highlighter.StyleCSS(opts.Style)
	if err != nil {
		return "", err
	}

	fragments := make([]Fragment, 0, len(sources))
	for _, src := range sources {
		frag, err := s.fragments.Render(ctx, src, opts)
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", src.DisplayName(), err)
		}
		fragments = append(fragments, frag)
	}

	return Assemble(fragments, styleCSS, opts), nil
}

// Convert runs the full pipeline: render the sources into one document and
// emit it to the target.
func (s *Service) Convert(ctx context.Context, sources []Source, opts RenderOptions, target OutputTarget) error {
	document, err := s.Render(ctx, sources, opts)
	if err != nil {
		return err
	}
	return s.Emit(ctx, document, target)
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}
