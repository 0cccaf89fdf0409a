package idm

import "errors"

// Domain errors for IDM operations.
var (
	// ErrParse is returned when a PID is empty.
	ErrParse = errors.New("classification identifier is empty")
	// ErrNoAttributes is returned when a PID resolves to no attributes where some are required.
	ErrNoAttributes = errors.New("IDM data not found or no attributes available")
)
