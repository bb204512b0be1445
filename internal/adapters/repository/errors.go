package repository

import "errors"

// Sentinel kinds for session store errors.
var (
	ErrNotFound    = errors.New("session not found")
	ErrDuplicateID = errors.New("session id already exists")
	ErrCapacity    = errors.New("session store at capacity")
)
