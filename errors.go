package codepdf

import "errors"

// Sentinel errors for library operations.
var (
	// ErrUnknownStyle reports a style name that is not in chroma's registry.
	// A wrong style must abort the run instead of silently producing
	// unstyled output.
	ErrUnknownStyle = errors.New("unknown style name")

	// ErrInputRead reports an input file that could not be read.
	ErrInputRead = errors.New("failed to read input")

	// ErrHTMLConversion reports a markdown rendering failure.
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// ErrHighlight reports a syntax highlighting failure.
	ErrHighlight = errors.New("syntax highlighting failed")

	// ErrOutputWrite reports an unwritable output destination.
	ErrOutputWrite = errors.New("failed to write output")

	// PDF conversion errors. ErrBrowserConnect means the Chrome dependency
	// is missing or broken; ErrPDFGeneration means the conversion itself
	// crashed. Callers report them differently since the remediation differs.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
