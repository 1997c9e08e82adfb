package main

import (
	"errors"
	"os"

	docsite "github.com/alnah/go-docsite"
	"github.com/alnah/go-docsite/internal/assets"
	"github.com/alnah/go-docsite/internal/config"
	"github.com/alnah/go-docsite/internal/dateutil"
)

// Exit codes for the docsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All pages rendered
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // Content tree errors (summary, titles, missing pages)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content tree errors (exit 4)
	if errors.Is(err, docsite.ErrMissingSummary) ||
		errors.Is(err, docsite.ErrSummaryParse) ||
		errors.Is(err, docsite.ErrMissingTitle) ||
		errors.Is(err, docsite.ErrNotFound) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, docsite.ErrEmptyCollectionName) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, ErrNoCollections) {
		return ExitUsage
	}

	return ExitGeneral
}
