package store

import (
	"context"
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

func tasksFromIDs(ids []int) []models.Task {
	tasks := make([]models.Task, len(ids))
	for i, id := range ids {
		tasks[i] = task(id, "t")
	}
	return tasks
}

func uniqueIDs(items []models.Task) bool {
	seen := make(map[int]bool, len(items))
	for _, t := range items {
		if seen[t.ID] {
			return false
		}
		seen[t.ID] = true
	}
	return true
}

func distinct(ids []int) int {
	seen := make(map[int]bool)
	for _, id := range ids {
		seen[id] = true
	}
	return len(seen)
}

// For any loaded list, items are unique by id and every distinct id is kept
func TestProperty_LoadKeepsIDsUnique(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("CompleteLoad deduplicates by id", prop.ForAll(
		func(ids []int) bool {
			s := New()
			s.CompleteLoad(tasksFromIDs(ids))
			snap := s.Snapshot()
			return uniqueIDs(snap.Items) && len(snap.Items) == distinct(ids)
		},
		gen.SliceOf(gen.IntRange(1, 20)),
	))

	properties.TestingRun(t)
}

// For any sequence of inserts and updates, ids stay unique and updates never grow the list
func TestProperty_LocalWritesKeepIDsUnique(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("inserts and updates preserve uniqueness", prop.ForAll(
		func(initial, inserts, updates []int) bool {
			s := New()
			s.CompleteLoad(tasksFromIDs(initial))

			for _, id := range inserts {
				s.ApplyLocalInsert(task(id, "ins"))
			}
			sizeAfterInserts := s.Len()

			for _, id := range updates {
				s.ApplyLocalUpdate(task(id, "upd"))
			}

			return uniqueIDs(s.Snapshot().Items) &&
				s.Len() == sizeAfterInserts &&
				sizeAfterInserts == distinct(append(append([]int{}, initial...), inserts...))
		},
		gen.SliceOf(gen.IntRange(1, 15)),
		gen.SliceOf(gen.IntRange(1, 30)),
		gen.SliceOf(gen.IntRange(1, 40)),
	))

	properties.TestingRun(t)
}

// For any prior list, a failed load leaves exactly that list in place
func TestProperty_FailedLoadPreservesItems(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("failure keeps the previous items", prop.ForAll(
		func(ids []int) bool {
			s := New()
			s.CompleteLoad(tasksFromIDs(ids))
			before := s.Snapshot().Items

			_ = s.Load(context.Background(), fetchErr(errors.New("down")))
			after := s.Snapshot()

			if after.Status != Failed || len(after.Items) != len(before) {
				return false
			}
			for i := range before {
				if before[i] != after.Items[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(1, 50)),
	))

	properties.TestingRun(t)
}
