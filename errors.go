package docsite

import "errors"

// Sentinel errors for library operations.
var (
	// Per-request errors. The request boundary converts these to
	// HTTP-style status results; they are never fatal to the process.
	ErrNotFound     = errors.New("content not found")
	ErrMissingTitle = errors.New("document has no top-level heading")

	// Collection-load errors. Fatal at startup: a collection must not
	// come online without a navigation index.
	ErrMissingSummary = errors.New("summary file not found")
	ErrSummaryParse   = errors.New("failed to parse summary file")

	// Path validation errors.
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")
	ErrInvalidAssetPath    = errors.New("invalid asset path")

	// Library lookup errors.
	ErrUnknownCollection = errors.New("unknown collection")
)
