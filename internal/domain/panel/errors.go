package panel

import "errors"

// Sentinel kinds for panel errors.
var (
	ErrUnknownPanel = errors.New("unknown panel type")
)
