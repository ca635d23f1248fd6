package database

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidReference is returned when a write names a board or
	// user that does not exist
	ErrInvalidReference = errors.New("invalid reference")
)
