package codepdf

// Layer is one precedence layer of option values. Nil fields are unset and
// fall through to the next layer.
type Layer struct {
	Style         *string
	LineNumbers   *bool
	ForceMarkdown *bool
	HTML          *bool
	Title         *string
}

// ResolveOptions merges layers into a RenderOptions snapshot. Earlier layers
// take precedence over later ones, and built-in defaults fill whatever no
// layer sets. Callers pass explicitly-set CLI flags first, then config file
// values, so CLI always wins.
func ResolveOptions(layers ...Layer) RenderOptions {
	opts := DefaultRenderOptions()
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if l.Style != nil {
			opts.Style = *l.Style
		}
		if l.LineNumbers != nil {
			opts.LineNumbers = *l.LineNumbers
		}
		if l.ForceMarkdown != nil {
			opts.ForceMarkdown = *l.ForceMarkdown
		}
		if l.HTML != nil {
			opts.HTML = *l.HTML
		}
		if l.Title != nil {
			opts.Title = *l.Title
		}
	}
	return opts
}
