package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// UserRepo handles all user-related database operations.
type UserRepo struct {
	db *sql.DB
}

// ListUsers returns every user with team name and assigned task count
func (r *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.full_name, u.email, u.description, u.avatar_url,
		       COALESCE(u.team_id, 0), COALESCE(tm.name, ''),
		       (SELECT COUNT(*) FROM tasks t WHERE t.assignee_id = u.id)
		FROM users u
		LEFT JOIN teams tm ON tm.id = u.team_id
		ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.Description, &u.AvatarURL,
			&u.TeamID, &u.TeamName, &u.TasksCount); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListUserTasks returns the tasks assigned to one user
func (r *UserRepo) ListUserTasks(ctx context.Context, userID int) ([]models.Task, error) {
	ok, err := exists(ctx, r.db, "users", userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	tasks, err := queryTasks(ctx, r.db, taskSelect+` WHERE t.assignee_id = ? ORDER BY t.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks of user %d: %w", userID, err)
	}
	return tasks, nil
}
