package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

type seedTask struct {
	title, description string
	priority           models.Priority
	status             models.Status
	assignee, board    int
}

// Seed inserts demo teams, users, boards and tasks if the database has no boards
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM boards").Scan(&count); err != nil {
		return fmt.Errorf("failed to count boards: %w", err)
	}
	if count > 0 {
		return nil
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		teams := []struct{ name, description string }{
			{"Platform", "Infrastructure and developer tooling"},
			{"Product", "Customer facing features"},
		}
		for _, t := range teams {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO teams (name, description) VALUES (?, ?)`, t.name, t.description); err != nil {
				return fmt.Errorf("failed to seed team '%s': %w", t.name, err)
			}
		}

		users := []struct {
			name, email, description string
			team                     int
		}{
			{"Ada Byron", "ada@example.com", "Backend engineer", 1},
			{"Grace Hopper", "grace@example.com", "Compiler whisperer", 1},
			{"Alan Kay", "alan@example.com", "Frontend engineer", 2},
			{"Barbara Liskov", "barbara@example.com", "Product lead", 2},
		}
		for _, u := range users {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO users (full_name, email, description, team_id) VALUES (?, ?, ?, ?)`,
				u.name, u.email, u.description, u.team); err != nil {
				return fmt.Errorf("failed to seed user '%s': %w", u.name, err)
			}
		}

		boards := []struct {
			name, description string
			team              int
		}{
			{"Infrastructure", "Servers, CI and deploys", 1},
			{"Web app", "The customer dashboard", 2},
			{"Onboarding", "New user experience", 2},
		}
		for _, b := range boards {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO boards (name, description, team_id) VALUES (?, ?, ?)`,
				b.name, b.description, b.team); err != nil {
				return fmt.Errorf("failed to seed board '%s': %w", b.name, err)
			}
		}

		tasks := []seedTask{
			{"Upgrade CI runners", "Move to the new runner image.", models.PriorityHigh, models.StatusInProgress, 1, 1},
			{"Rotate TLS certificates", "", models.PriorityMedium, models.StatusBacklog, 2, 1},
			{"Write deploy runbook", "## Steps\n\n1. Tag\n2. Deploy\n3. Verify", models.PriorityLow, models.StatusDone, 1, 1},
			{"Fix login redirect", "Users land on a blank page after login.", models.PriorityHigh, models.StatusBacklog, 3, 2},
			{"Dark mode", "", models.PriorityLow, models.StatusBacklog, 0, 2},
			{"Paginate task table", "", models.PriorityMedium, models.StatusInProgress, 3, 2},
			{"Welcome email copy", "", models.PriorityMedium, models.StatusDone, 4, 3},
			{"Product tour", "Highlight the board view on first visit.", models.PriorityHigh, models.StatusBacklog, 4, 3},
		}
		for _, t := range tasks {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (title, description, priority, status, assignee_id, board_id)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				t.title, t.description, t.priority, t.status, nullableID(t.assignee), t.board); err != nil {
				return fmt.Errorf("failed to seed task '%s': %w", t.title, err)
			}
		}
		return nil
	})
}
