package models

import (
	"fmt"
	"strings"
)

// Status is the workflow state of a task and decides its kanban column
type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// Statuses returns the status options in column order
func Statuses() []Option[Status] {
	return []Option[Status]{
		{Value: StatusBacklog, Label: "Backlog"},
		{Value: StatusInProgress, Label: "In progress"},
		{Value: StatusDone, Label: "Done"},
	}
}

// Label returns the display label of the status
func (s Status) Label() string {
	for _, opt := range Statuses() {
		if opt.Value == s {
			return opt.Label
		}
	}
	return string(s)
}

// Column returns the column index of the status, or -1 when unknown
func (s Status) Column() int {
	for i, opt := range Statuses() {
		if opt.Value == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s.Column() >= 0
}

// Next returns the status of the column to the right
func (s Status) Next() (Status, error) {
	col := s.Column()
	if col < 0 {
		return s, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	if col == NumColumns-1 {
		return s, ErrAlreadyLastColumn
	}
	return Statuses()[col+1].Value, nil
}

// Prev returns the status of the column to the left
func (s Status) Prev() (Status, error) {
	col := s.Column()
	if col < 0 {
		return s, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	if col == 0 {
		return s, ErrAlreadyFirstColumn
	}
	return Statuses()[col-1].Value, nil
}

// ParseStatus accepts the wire value or the label, case-insensitively,
// so "in progress", "InProgress" and "inprogress" all resolve.
func ParseStatus(s string) (Status, error) {
	compact := strings.ReplaceAll(s, " ", "")
	for _, opt := range Statuses() {
		if equalFold(string(opt.Value), compact) || equalFold(opt.Label, s) {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
