package codepdf

import "testing"

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestResolveOptions(t *testing.T) {
	t.Run("no layers yields defaults", func(t *testing.T) {
		opts := ResolveOptions()
		if opts.Style != DefaultStyle {
			t.Errorf("Style = %q, want %q", opts.Style, DefaultStyle)
		}
		if opts.LineNumbers || opts.ForceMarkdown || opts.HTML {
			t.Errorf("expected all flags false, got %+v", opts)
		}
		if opts.Title != "" {
			t.Errorf("Title = %q, want empty", opts.Title)
		}
	})

	t.Run("CLI style wins over config style", func(t *testing.T) {
		cli := Layer{Style: strPtr("monokai")}
		cfg := Layer{Style: strPtr("default")}
		opts := ResolveOptions(cli, cfg)
		if opts.Style != "monokai" {
			t.Errorf("Style = %q, want %q", opts.Style, "monokai")
		}
	})

	t.Run("config style applies when CLI is silent", func(t *testing.T) {
		cfg := Layer{Style: strPtr("solarized-dark")}
		opts := ResolveOptions(Layer{}, cfg)
		if opts.Style != "solarized-dark" {
			t.Errorf("Style = %q, want %q", opts.Style, "solarized-dark")
		}
	})

	t.Run("defaults apply when all layers are silent", func(t *testing.T) {
		opts := ResolveOptions(Layer{}, Layer{})
		if opts.Style != DefaultStyle {
			t.Errorf("Style = %q, want %q", opts.Style, DefaultStyle)
		}
	})

	t.Run("explicit false overrides config true", func(t *testing.T) {
		cli := Layer{LineNumbers: boolPtr(false)}
		cfg := Layer{LineNumbers: boolPtr(true)}
		opts := ResolveOptions(cli, cfg)
		if opts.LineNumbers {
			t.Error("LineNumbers = true, want false (CLI wins)")
		}
	})

	t.Run("fields merge independently", func(t *testing.T) {
		cli := Layer{Title: strPtr("My Doc")}
		cfg := Layer{Style: strPtr("monokai"), ForceMarkdown: boolPtr(true)}
		opts := ResolveOptions(cli, cfg)
		if opts.Title != "My Doc" {
			t.Errorf("Title = %q, want %q", opts.Title, "My Doc")
		}
		if opts.Style != "monokai" {
			t.Errorf("Style = %q, want %q", opts.Style, "monokai")
		}
		if !opts.ForceMarkdown {
			t.Error("ForceMarkdown = false, want true")
		}
	})
}
