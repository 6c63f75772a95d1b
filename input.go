package codepdf

import (
	"fmt"
	"io"
	"os"
)

// LoadSources reads each named input (or stdin for StdinName) and classifies
// it. Zero names defaults to reading stdin. The first unreadable input aborts
// the whole run with ErrInputRead naming the offending path.
func LoadSources(names []string, stdin io.Reader, opts RenderOptions) ([]Source, error) {
	if len(names) == 0 {
		names = []string{StdinName}
	}

	sources := make([]Source, 0, len(names))
	for _, name := range names {
		content, err := readInput(name, stdin)
		if err != nil {
			return nil, err
		}

		kind, language := Detect(name, content, opts.ForceMarkdown)
		sources = append(sources, Source{
			Name:     name,
			Content:  content,
			Kind:     kind,
			Language: language,
		})
	}
	return sources, nil
}

// readInput returns the raw content of one input, from stdin or from disk.
func readInput(name string, stdin io.Reader) (string, error) {
	if name == StdinName {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrInputRead, err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(name) // #nosec G304 -- input paths are user-provided by design
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInputRead, name, err)
	}
	return string(content), nil
}
