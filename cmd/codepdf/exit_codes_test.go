package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, ExitSuccess},
		{"generic error", errors.New("boom"), ExitError},
		{"cancellation", context.Canceled, ExitCancelled},
		{"wrapped cancellation", fmt.Errorf("converting: %w", context.Canceled), ExitCancelled},
		{"deadline is a plain error", context.DeadlineExceeded, ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
