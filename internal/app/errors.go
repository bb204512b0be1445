package service

import "errors"

// Service errors.
var (
	// ErrAlreadyScored indicates the session's arrangement was already
	// submitted and scored.
	ErrAlreadyScored = errors.New("session already scored")
)
