package domain

import "errors"

var (
	// ErrInvalidArgument marks a precondition violation by the caller.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOverflow is returned when a total would not fit in an int64.
	ErrOverflow = errors.New("integer overflow")
	// ErrNotConfigured is returned when no solver is wired for a variant.
	ErrNotConfigured = errors.New("dependency not configured")
)
