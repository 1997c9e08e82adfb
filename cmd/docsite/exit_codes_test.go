package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	docsite "github.com/alnah/go-docsite"
	"github.com/alnah/go-docsite/internal/assets"
	"github.com/alnah/go-docsite/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "unknown error", err: errors.New("boom"), expected: ExitGeneral},
		{name: "missing summary", err: docsite.ErrMissingSummary, expected: ExitContent},
		{name: "summary parse", err: docsite.ErrSummaryParse, expected: ExitContent},
		{name: "missing title", err: docsite.ErrMissingTitle, expected: ExitContent},
		{name: "page not found", err: docsite.ErrNotFound, expected: ExitContent},
		{name: "file not found", err: os.ErrNotExist, expected: ExitIO},
		{name: "permission denied", err: os.ErrPermission, expected: ExitIO},
		{name: "write failure", err: ErrWriteOutput, expected: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, expected: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, expected: ExitUsage},
		{name: "invalid workers", err: config.ErrInvalidWorkers, expected: ExitUsage},
		{name: "style not found", err: assets.ErrStyleNotFound, expected: ExitUsage},
		{name: "no collections", err: ErrNoCollections, expected: ExitUsage},
		{name: "empty collection name", err: docsite.ErrEmptyCollectionName, expected: ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.expected {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeForWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading collection %q: %w", "Docs", docsite.ErrMissingSummary)
	if got := exitCodeFor(wrapped); got != ExitContent {
		t.Errorf("exitCodeFor(wrapped) = %d, want %d", got, ExitContent)
	}
}
