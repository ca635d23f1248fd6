package models

import "errors"

// Domain-specific errors for task status and ordering
var (
	// ErrAlreadyFirstColumn indicates an attempt to move left from the first column
	ErrAlreadyFirstColumn = errors.New("task is already in the first column")

	// ErrAlreadyLastColumn indicates an attempt to move right from the last column
	ErrAlreadyLastColumn = errors.New("task is already in the last column")

	// ErrAlreadyFirstTask indicates an attempt to move up from the top of a column
	ErrAlreadyFirstTask = errors.New("task is already at the top of the column")

	// ErrAlreadyLastTask indicates an attempt to move down from the bottom of a column
	ErrAlreadyLastTask = errors.New("task is already at the bottom of the column")

	// ErrInvalidStatus is returned when a status string cannot be parsed
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when a priority string cannot be parsed
	ErrInvalidPriority = errors.New("invalid priority")
)
