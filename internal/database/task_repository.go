package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

// taskSelect joins the assignee and board so tasks come back denormalized
const taskSelect = `
	SELECT t.id, t.title, t.description, t.priority, t.status,
	       COALESCE(u.id, 0), COALESCE(u.full_name, ''), COALESCE(u.email, ''), COALESCE(u.avatar_url, ''),
	       t.board_id, b.name
	FROM tasks t
	JOIN boards b ON b.id = t.board_id
	LEFT JOIN users u ON u.id = t.assignee_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status,
		&t.Assignee.ID, &t.Assignee.FullName, &t.Assignee.Email, &t.Assignee.AvatarURL,
		&t.BoardID, &t.BoardName,
	)
	return t, err
}

func queryTasks(ctx context.Context, db *sql.DB, query string, args ...any) ([]models.Task, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListTasks returns every task ordered by id
func (r *TaskRepo) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := queryTasks(ctx, r.db, taskSelect+` ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns one task
func (r *TaskRepo) GetTask(ctx context.Context, id int) (models.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, taskSelect+` WHERE t.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return t, nil
}

// checkRefs verifies the board and assignee of a write exist
func checkRefs(ctx context.Context, tx *sql.Tx, boardID, assigneeID int) error {
	if boardID != 0 {
		ok, err := exists(ctx, tx, "boards", boardID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("board %d: %w", boardID, ErrInvalidReference)
		}
	}
	if assigneeID != 0 {
		ok, err := exists(ctx, tx, "users", assigneeID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("user %d: %w", assigneeID, ErrInvalidReference)
		}
	}
	return nil
}

// CreateTask inserts a task in the Backlog column and returns its id
func (r *TaskRepo) CreateTask(ctx context.Context, req models.CreateTaskRequest) (int, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if req.BoardID == 0 {
			return fmt.Errorf("board 0: %w", ErrInvalidReference)
		}
		if err := checkRefs(ctx, tx, req.BoardID, req.AssigneeID); err != nil {
			return err
		}

		priority := req.Priority
		if priority == "" {
			priority = models.DefaultPriority
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, description, priority, status, assignee_id, board_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			req.Title, req.Description, priority, models.DefaultStatus, nullableID(req.AssigneeID), req.BoardID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert task '%s': %w", req.Title, err)
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// UpdateTask replaces the editable fields of a task
func (r *TaskRepo) UpdateTask(ctx context.Context, id int, req models.UpdateTaskRequest) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkRefs(ctx, tx, 0, req.AssigneeID); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx,
			`UPDATE tasks
			 SET title = ?, description = ?, priority = ?, status = ?, assignee_id = ?,
			     updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			req.Title, req.Description, req.Priority, req.Status, nullableID(req.AssigneeID), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update task %d: %w", id, err)
		}
		return requireAffected(result, "task", id)
	})
}

// UpdateTaskStatus changes only the status of a task
func (r *TaskRepo) UpdateTaskStatus(ctx context.Context, id int, status models.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update status of task %d: %w", id, err)
	}
	return requireAffected(result, "task", id)
}

func requireAffected(result sql.Result, kind string, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return nil
}
