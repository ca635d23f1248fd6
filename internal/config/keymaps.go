package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	ViewTask      string `yaml:"view_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	MoveTaskUp    string `yaml:"move_task_up"`
	MoveTaskDown  string `yaml:"move_task_down"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	NextBoard  string `yaml:"next_board"`
	PrevBoard  string `yaml:"prev_board"`
	ToggleView string `yaml:"toggle_view"`

	// List filters
	Search         string `yaml:"search"`
	FilterAssignee string `yaml:"filter_assignee"`
	CycleStatus    string `yaml:"cycle_status"`
	CycleBoard     string `yaml:"cycle_board"`
	ClearFilters   string `yaml:"clear_filters"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "a",
		EditTask:      "e",
		ViewTask:      " ",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTaskUp:    "K",
		MoveTaskDown:  "J",
		SaveForm:      "ctrl+s",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",
		NextBoard:  "}",
		PrevBoard:  "{",
		ToggleView: "tab",

		// List filters
		Search:         "/",
		FilterAssignee: "u",
		CycleStatus:    "s",
		CycleBoard:     "b",
		ClearFilters:   "c",

		// Other
		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	pairs := []struct {
		value *string
		def   string
	}{
		{&k.AddTask, defaults.AddTask},
		{&k.EditTask, defaults.EditTask},
		{&k.ViewTask, defaults.ViewTask},
		{&k.MoveTaskLeft, defaults.MoveTaskLeft},
		{&k.MoveTaskRight, defaults.MoveTaskRight},
		{&k.MoveTaskUp, defaults.MoveTaskUp},
		{&k.MoveTaskDown, defaults.MoveTaskDown},
		{&k.SaveForm, defaults.SaveForm},
		{&k.PrevColumn, defaults.PrevColumn},
		{&k.NextColumn, defaults.NextColumn},
		{&k.PrevTask, defaults.PrevTask},
		{&k.NextTask, defaults.NextTask},
		{&k.NextBoard, defaults.NextBoard},
		{&k.PrevBoard, defaults.PrevBoard},
		{&k.ToggleView, defaults.ToggleView},
		{&k.Search, defaults.Search},
		{&k.FilterAssignee, defaults.FilterAssignee},
		{&k.CycleStatus, defaults.CycleStatus},
		{&k.CycleBoard, defaults.CycleBoard},
		{&k.ClearFilters, defaults.ClearFilters},
		{&k.Refresh, defaults.Refresh},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	}
	for _, p := range pairs {
		if *p.value == "" {
			*p.value = p.def
		}
	}
}
