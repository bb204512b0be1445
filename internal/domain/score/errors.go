package score

import "errors"

// Sentinel kinds for scoring errors.
var (
	// ErrInvalidSequence marks a submitted ordering with the wrong cap
	// count, duplicate caps, or caps from another panel. Retrying the same
	// input cannot succeed.
	ErrInvalidSequence = errors.New("invalid cap sequence")
)
