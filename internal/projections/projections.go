package projections

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// AllStatuses is the status filter value that matches every status
const AllStatuses models.Status = "All"

// Columns holds the kanban columns of one board in status order
type Columns [models.NumColumns][]models.Task

// Column returns the tasks of the column for status s
func (c Columns) Column(s models.Status) []models.Task {
	col := s.Column()
	if col < 0 {
		return nil
	}
	return c[col]
}

// Total returns the number of tasks across all columns
func (c Columns) Total() int {
	n := 0
	for _, col := range c {
		n += len(col)
	}
	return n
}

// Clone returns a deep copy whose column slices can be modified freely
func (c Columns) Clone() Columns {
	var out Columns
	for i, col := range c {
		out[i] = slices.Clone(col)
		if out[i] == nil {
			out[i] = []models.Task{}
		}
	}
	return out
}

// Locate finds a task by id and returns its column and index
func (c Columns) Locate(taskID int) (col, idx int, ok bool) {
	for ci, tasks := range c {
		for ti, t := range tasks {
			if t.ID == taskID {
				return ci, ti, true
			}
		}
	}
	return -1, -1, false
}

// GroupByBoard buckets the tasks of one board into status columns, each
// ordered High -> Medium -> Low. Tasks with an unknown status are left out.
func GroupByBoard(tasks []models.Task, boardID int) Columns {
	var cols Columns
	for i := range cols {
		cols[i] = []models.Task{}
	}
	for _, t := range tasks {
		if t.BoardID != boardID {
			continue
		}
		col := t.Status.Column()
		if col < 0 {
			continue
		}
		cols[col] = append(cols[col], t)
	}
	for i := range cols {
		sortByPriorityInPlace(cols[i])
	}
	return cols
}

// SortByPriority returns a new slice ordered High -> Medium -> Low.
// The sort is stable so equal priorities keep their input order.
func SortByPriority(tasks []models.Task) []models.Task {
	out := slices.Clone(tasks)
	sortByPriorityInPlace(out)
	return out
}

func sortByPriorityInPlace(tasks []models.Task) {
	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		return models.ComparePriority(a.Priority, b.Priority)
	})
}

// Filter narrows the task list view. Empty fields match everything.
type Filter struct {
	Search   string        // case-insensitive substring of the title
	Assignee string        // case-insensitive substring of the assignee's full name
	Status   models.Status // "" or AllStatuses for any
	BoardID  int           // 0 for any
}

// IsZero reports whether the filter matches every task
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Assignee == "" && f.BoardID == 0 &&
		(f.Status == "" || f.Status == AllStatuses)
}

// Match reports whether t passes every criterion of f
func (f Filter) Match(t models.Task) bool {
	if f.Search != "" && !containsFold(t.Title, f.Search) {
		return false
	}
	if f.Assignee != "" && !containsFold(t.Assignee.FullName, f.Assignee) {
		return false
	}
	if f.Status != "" && f.Status != AllStatuses && t.Status != f.Status {
		return false
	}
	if f.BoardID != 0 && t.BoardID != f.BoardID {
		return false
	}
	return true
}

// FilterTasks returns the tasks matching f in their input order
func FilterTasks(tasks []models.Task, f Filter) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SortBoards returns the boards ordered by name for the given BCP 47 locale.
// An unparsable locale falls back to the root collation order.
func SortBoards(boards []models.Board, locale string) []models.Board {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	c := collate.New(tag)

	out := slices.Clone(boards)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
