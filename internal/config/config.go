// Package config discovers and parses the codepdf.json config file.
//
// The file is relaxed JSON (single-line // comments permitted). Recognized
// keys: forcemd, html, linenumbers (bool), style, title (string). Unknown
// keys are ignored; type-mismatched known keys fail parsing. Fields are
// pointers so a merge layer can tell "unset" from "set to zero value".
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/welbornprod/codepdf/internal/fileutil"
	"github.com/welbornprod/codepdf/internal/jsonutil"
)

// FileName is the config file name searched for in each candidate directory.
const FileName = "codepdf.json"

// Sentinel errors for config operations.
var (
	ErrConfigRead  = errors.New("failed to read config file")
	ErrConfigParse = errors.New("failed to parse config file")
)

// Config holds the optional settings read from codepdf.json.
type Config struct {
	ForceMD     *bool   `yaml:"forcemd"`
	HTML        *bool   `yaml:"html"`
	LineNumbers *bool   `yaml:"linenumbers"`
	Style       *string `yaml:"style"`
	Title       *string `yaml:"title"`
}

// CandidateDirs returns the config search directories in priority order:
// current working directory, home directory, then the directory containing
// the executable. Directories that cannot be resolved are omitted.
func CandidateDirs() []string {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

// Discover returns the path of the first existing config file among the
// candidate directories. The second return is false when none exists.
// First file found wins; candidates are never merged.
func Discover(dirs []string) (string, bool) {
	for _, dir := range dirs {
		path := filepath.Join(dir, FileName)
		if fileutil.FileExists(path) {
			return path, true
		}
	}
	return "", false
}

// Load reads and parses one config file. A malformed file or a
// type-mismatched known key is a fatal ErrConfigParse; this is checked
// before any rendering begins.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path comes from the documented search order
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigRead, path, err)
	}

	var cfg Config
	if err := jsonutil.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return &cfg, nil
}
