package state

import (
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/projections"
)

// ViewMode represents the current view mode.
// Users can toggle between Kanban (column-based) and List (table-based) views.
type ViewMode int

const (
	KanbanView ViewMode = iota // Default column-based kanban view
	ListView                   // Filterable table of every task
)

// ListViewState manages the list view state.
// This includes view mode toggle, row selection, scrolling and the filter.
type ListViewState struct {
	viewMode ViewMode

	// selectedRow is the index of the currently selected row in list view
	selectedRow int

	// scrollOffset is the vertical scroll offset for list view
	scrollOffset int

	filter projections.Filter
}

// NewListViewState creates a new ListViewState with default values.
func NewListViewState() *ListViewState {
	return &ListViewState{viewMode: KanbanView}
}

// ViewMode returns the current view mode.
func (s *ListViewState) ViewMode() ViewMode {
	return s.viewMode
}

// ToggleView toggles between kanban and list views.
func (s *ListViewState) ToggleView() {
	if s.viewMode == KanbanView {
		s.viewMode = ListView
	} else {
		s.viewMode = KanbanView
	}
}

// IsListView returns true if currently in list view mode.
func (s *ListViewState) IsListView() bool {
	return s.viewMode == ListView
}

// SelectedRow returns the index of the currently selected row.
func (s *ListViewState) SelectedRow() int {
	return s.selectedRow
}

// ScrollOffset returns the current scroll offset.
func (s *ListViewState) ScrollOffset() int {
	return s.scrollOffset
}

// MoveUp moves the selection up one row if possible.
func (s *ListViewState) MoveUp() {
	if s.selectedRow > 0 {
		s.selectedRow--
	}
	if s.selectedRow < s.scrollOffset {
		s.scrollOffset = s.selectedRow
	}
}

// MoveDown moves the selection down one row if possible.
func (s *ListViewState) MoveDown(maxRows, visibleRows int) {
	if maxRows > 0 && s.selectedRow < maxRows-1 {
		s.selectedRow++
	}
	if visibleRows > 0 && s.selectedRow >= s.scrollOffset+visibleRows {
		s.scrollOffset = s.selectedRow - visibleRows + 1
	}
}

// Clamp keeps the selection inside a list of rows entries.
func (s *ListViewState) Clamp(rows int) {
	if rows == 0 {
		s.ResetSelection()
		return
	}
	s.selectedRow = min(s.selectedRow, rows-1)
	s.scrollOffset = min(s.scrollOffset, s.selectedRow)
}

// ResetSelection resets the row selection and scroll offset to zero.
func (s *ListViewState) ResetSelection() {
	s.selectedRow = 0
	s.scrollOffset = 0
}

// Filter returns the current filter.
func (s *ListViewState) Filter() projections.Filter {
	return s.filter
}

// SetSearch sets the title filter.
func (s *ListViewState) SetSearch(q string) {
	s.filter.Search = q
	s.ResetSelection()
}

// SetAssignee sets the assignee filter.
func (s *ListViewState) SetAssignee(q string) {
	s.filter.Assignee = q
	s.ResetSelection()
}

// CycleStatus steps the status filter through All, then every status.
func (s *ListViewState) CycleStatus() {
	statuses := models.Statuses()
	next := models.Status("")
	if s.filter.Status == "" || s.filter.Status == projections.AllStatuses {
		next = statuses[0].Value
	} else if col := s.filter.Status.Column(); col >= 0 && col < len(statuses)-1 {
		next = statuses[col+1].Value
	}
	s.filter.Status = next
	s.ResetSelection()
}

// CycleBoard steps the board filter through All, then every board in order.
func (s *ListViewState) CycleBoard(boards []models.Board) {
	next := 0
	if s.filter.BoardID == 0 {
		if len(boards) > 0 {
			next = boards[0].ID
		}
	} else {
		for i, b := range boards {
			if b.ID == s.filter.BoardID && i+1 < len(boards) {
				next = boards[i+1].ID
				break
			}
		}
	}
	s.filter.BoardID = next
	s.ResetSelection()
}

// ClearFilters removes every filter.
func (s *ListViewState) ClearFilters() {
	s.filter = projections.Filter{}
	s.ResetSelection()
}
