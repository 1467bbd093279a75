package analyzer

import "errors"

// Engine errors are surfaced to the caller unmodified; the engine never
// substitutes default input or returns a partial report.
var (
	// ErrInvalidInput is returned when content is empty or whitespace only.
	ErrInvalidInput = errors.New("content is empty or whitespace only")

	// ErrInsufficientText is returned when no sentences can be detected.
	ErrInsufficientText = errors.New("content has no detectable sentences")

	// ErrInvalidWeightConfig is returned when sub-score weights do not sum
	// to 1.0 within epsilon.
	ErrInvalidWeightConfig = errors.New("weights must sum to 1.0")
)
