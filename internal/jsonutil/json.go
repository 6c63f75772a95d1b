// Package jsonutil parses relaxed JSON: JSON with single-line // comments.
// Comments are stripped as a preprocessing step and the remainder is parsed
// with goccy/go-yaml (JSON is a YAML subset), isolating the external
// dependency so callers never import it directly.
package jsonutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("jsonutil: nil or empty data")
	ErrNilDestination = errors.New("jsonutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("jsonutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal strips // comments and parses the remaining JSON into v.
// Unknown keys are ignored; type mismatches on known keys are errors.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(StripComments(data), v); err != nil {
		return fmt.Errorf("jsonutil: %w", err)
	}
	return nil
}

// StripComments removes single-line // comments from relaxed JSON.
// A // sequence inside a string literal is content, not a comment.
func StripComments(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}

		if c == '/' && i+1 < len(data) && data[i+1] == '/' {
			// Skip to end of line, keeping the newline itself.
			for i < len(data) && data[i] != '\n' {
				i++
			}
			if i < len(data) {
				out = append(out, '\n')
			}
			continue
		}

		out = append(out, c)
	}
	return out
}
