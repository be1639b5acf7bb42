package registry

import "errors"

var (
	// ErrDuplicateKey is returned when a key is registered twice.
	ErrDuplicateKey = errors.New("descriptor key already registered")

	// ErrNotFound is returned by lookups that miss.
	ErrNotFound = errors.New("descriptor not found")
)
