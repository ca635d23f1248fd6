package events

import "testing"

// ============================================================================
// Key Tests
// ============================================================================

func TestKeys(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{TasksKey(), "tasks"},
		{TaskKey(42), "tasks/42"},
		{BoardsKey(), "boards"},
		{BoardTasksKey(2), "boards/2/tasks"},
		{TeamsKey(), "teams"},
		{TeamKey(3), "teams/3"},
		{UsersKey(), "users"},
		{UserTasksKey(9), "users/9/tasks"},
	}

	for _, tt := range tests {
		if string(tt.key) != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, tt.key)
		}
	}
}

func TestKey_HasPrefix(t *testing.T) {
	tests := []struct {
		name   string
		key    Key
		prefix Key
		want   bool
	}{
		{"exact match", "tasks", "tasks", true},
		{"child segment", "tasks/42", "tasks", true},
		{"nested child", "boards/2/tasks", "boards/2", true},
		{"partial segment", "tasksets", "tasks", false},
		{"other board", "boards/21/tasks", "boards/2", false},
		{"empty prefix", "tasks", "", false},
		{"longer prefix", "tasks", "tasks/1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.HasPrefix(tt.prefix); got != tt.want {
				t.Errorf("%q.HasPrefix(%q) = %v, want %v", tt.key, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestEvent_Matches(t *testing.T) {
	e := Invalidate(42, 2, TasksKey(), BoardTasksKey(2))

	if !e.Matches(TaskKey(42)) {
		t.Error("tasks invalidation should cover tasks/42")
	}
	if !e.Matches(BoardTasksKey(2)) {
		t.Error("expected boards/2/tasks to match")
	}
	if e.Matches(BoardTasksKey(3)) {
		t.Error("boards/3/tasks should not match")
	}
	if e.Matches(UsersKey()) {
		t.Error("users should not match")
	}
}
