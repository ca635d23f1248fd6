package events

import "errors"

// Bus errors
var (
	// ErrBusClosed is returned when publishing to a closed bus
	ErrBusClosed = errors.New("event bus is closed")
)
