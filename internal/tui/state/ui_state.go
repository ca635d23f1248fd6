package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode
	TaskFormMode                   // Create/edit form with huh
	DetailMode                     // Read-only task detail
	HelpMode                       // Displaying help screen
	SearchMode                     // Typing the list view title filter (/)
	AssigneeFilterMode             // Typing the list view assignee filter
)

// UIState manages the user interface state.
// This includes kanban navigation, the selected board, terminal
// dimensions and the current interaction mode.
type UIState struct {
	// selectedBoard is the index into the sorted board list
	selectedBoard int

	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	width  int
	height int

	mode Mode

	// detailTaskID is the task shown in DetailMode
	detailTaskID int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedBoard returns the index of the selected board.
func (s *UIState) SelectedBoard() int {
	return s.selectedBoard
}

// SetSelectedBoard selects a board and resets the kanban cursor.
func (s *UIState) SetSelectedBoard(index int) {
	s.selectedBoard = index
	s.selectedColumn = 0
	s.selectedTask = 0
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// ClampSelection keeps the task cursor inside a column of columnLen tasks.
func (s *UIState) ClampSelection(columnLen int) {
	if columnLen == 0 {
		s.selectedTask = 0
		return
	}
	s.selectedTask = max(0, min(s.selectedTask, columnLen-1))
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// DetailTaskID returns the task shown in DetailMode.
func (s *UIState) DetailTaskID() int {
	return s.detailTaskID
}

// ShowDetail switches to DetailMode for taskID.
func (s *UIState) ShowDetail(taskID int) {
	s.detailTaskID = taskID
	s.mode = DetailMode
}
