package main

import (
	"context"
	"errors"
)

// Exit codes for the codepdf CLI.
const (
	ExitSuccess   = 0 // successful conversion
	ExitError     = 1 // any fatal error (bad config, unreadable input, render or write failure)
	ExitCancelled = 2 // user cancelled (SIGINT)
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, context.Canceled) {
		return ExitCancelled
	}
	return ExitError
}
