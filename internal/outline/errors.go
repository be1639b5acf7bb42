package outline

import "errors"

var (
	// ErrNullHandle is returned when a never-created, cleared or stale handle
	// is dereferenced.
	ErrNullHandle = errors.New("null outline handle")

	// ErrInvalidTransition is returned when an outline operation does not fit
	// the record's lifecycle state.
	ErrInvalidTransition = errors.New("invalid outline state transition")
)
