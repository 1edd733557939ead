package credential

import "errors"

// Errors
var (
	// ErrMissingValue means a required credential argument was absent.
	// Always a caller bug.
	ErrMissingValue = errors.New("missing credential value")

	// ErrInvalidFormat means a plaintext failed the format rules, or a
	// digest was empty or blank.
	ErrInvalidFormat = errors.New("invalid credential format")
)
