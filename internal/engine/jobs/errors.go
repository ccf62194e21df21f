package jobs

import "errors"

// Error kinds surfaced to callers. Both are recoverable: the user corrects
// the input and retries.
var (
	// ErrExtraction marks a file that could not be parsed or held no text.
	ErrExtraction = errors.New("extraction failed")
	// ErrValidation marks missing or invalid user input.
	ErrValidation = errors.New("validation failed")
)
