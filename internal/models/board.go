package models

// Board is a named collection of tasks.
// TaskCount is a cached aggregate from the API and is not authoritative
// over the number of tasks held in the task store.
type Board struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TaskCount   int    `json:"taskCount"`
}

// GetID returns the board id
func (b Board) GetID() int {
	return b.ID
}
