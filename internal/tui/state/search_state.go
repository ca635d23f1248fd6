package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// maxQueryLength caps filter input
const maxQueryLength = 100

// SearchState manages the text input used by the list view filters.
// The same input serves the title search and the assignee filter.
type SearchState struct {
	input textinput.Model

	// original is the filter value when editing started, restored on cancel
	original string
}

// NewSearchState creates a new SearchState with an unfocused input.
func NewSearchState() *SearchState {
	ti := textinput.New()
	ti.CharLimit = maxQueryLength
	return &SearchState{input: ti}
}

// Begin starts editing with prompt and the current filter value.
func (s *SearchState) Begin(prompt, current string) tea.Cmd {
	s.original = current
	s.input.Prompt = prompt
	s.input.SetValue(current)
	s.input.CursorEnd()
	return s.input.Focus()
}

// Update forwards a message to the input.
func (s *SearchState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Value returns the text typed so far.
func (s *SearchState) Value() string {
	return s.input.Value()
}

// Original returns the value the filter had before editing.
func (s *SearchState) Original() string {
	return s.original
}

// End stops editing.
func (s *SearchState) End() {
	s.input.Blur()
}

// View renders the input.
func (s *SearchState) View() string {
	return s.input.View()
}
