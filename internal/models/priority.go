package models

import "fmt"

// Priority represents a task priority level
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Option is a value/label pair used by pickers and forms
type Option[T ~string] struct {
	Value T
	Label string
}

// Priorities returns the priority options in form order
func Priorities() []Option[Priority] {
	return []Option[Priority]{
		{Value: PriorityLow, Label: "Low"},
		{Value: PriorityMedium, Label: "Medium"},
		{Value: PriorityHigh, Label: "High"},
	}
}

// Rank orders priorities for display: High sorts first.
// Unknown values rank after Low so they sink to the bottom of a column.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	return p.Rank() < 3
}

// ComparePriority is a three-way comparator ordering High before Medium before Low
func ComparePriority(a, b Priority) int {
	return a.Rank() - b.Rank()
}

// ParsePriority accepts a priority name case-insensitively
func ParsePriority(s string) (Priority, error) {
	for _, opt := range Priorities() {
		if equalFold(string(opt.Value), s) {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}
