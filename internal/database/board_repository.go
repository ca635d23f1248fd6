package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sql.DB
}

// ListBoards returns every board with its task count
func (r *BoardRepo) ListBoards(ctx context.Context) ([]models.Board, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.id, b.name, b.description, COUNT(t.id)
		FROM boards b
		LEFT JOIN tasks t ON t.board_id = b.id
		GROUP BY b.id
		ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	boards := []models.Board{}
	for rows.Next() {
		var b models.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.TaskCount); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// ListBoardTasks returns the tasks of one board
func (r *BoardRepo) ListBoardTasks(ctx context.Context, boardID int) ([]models.Task, error) {
	ok, err := exists(ctx, r.db, "boards", boardID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("board %d: %w", boardID, ErrNotFound)
	}

	tasks, err := queryTasks(ctx, r.db, taskSelect+` WHERE t.board_id = ? ORDER BY t.id`, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks of board %d: %w", boardID, err)
	}
	return tasks, nil
}
