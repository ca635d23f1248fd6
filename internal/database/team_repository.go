package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// TeamRepo handles all team-related database operations.
type TeamRepo struct {
	db *sql.DB
}

// ListTeams returns every team with member and board counts
func (r *TeamRepo) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.description,
		       (SELECT COUNT(*) FROM users u WHERE u.team_id = t.id),
		       (SELECT COUNT(*) FROM boards b WHERE b.team_id = t.id)
		FROM teams t
		ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.UsersCount, &t.BoardsCount); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// GetTeam returns one team with its members and boards
func (r *TeamRepo) GetTeam(ctx context.Context, id int) (models.TeamDetails, error) {
	team := models.TeamDetails{Users: []models.TeamMember{}, Boards: []models.TeamBoard{}}

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM teams WHERE id = ?`, id,
	).Scan(&team.ID, &team.Name, &team.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TeamDetails{}, fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.TeamDetails{}, fmt.Errorf("failed to get team %d: %w", id, err)
	}

	users, err := r.db.QueryContext(ctx,
		`SELECT id, full_name, email, description, avatar_url FROM users WHERE team_id = ? ORDER BY id`, id)
	if err != nil {
		return models.TeamDetails{}, fmt.Errorf("failed to list members of team %d: %w", id, err)
	}
	defer users.Close()
	for users.Next() {
		var m models.TeamMember
		if err := users.Scan(&m.ID, &m.FullName, &m.Email, &m.Description, &m.AvatarURL); err != nil {
			return models.TeamDetails{}, err
		}
		team.Users = append(team.Users, m)
	}
	if err := users.Err(); err != nil {
		return models.TeamDetails{}, err
	}

	boards, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM boards WHERE team_id = ? ORDER BY id`, id)
	if err != nil {
		return models.TeamDetails{}, fmt.Errorf("failed to list boards of team %d: %w", id, err)
	}
	defer boards.Close()
	for boards.Next() {
		var b models.TeamBoard
		if err := boards.Scan(&b.ID, &b.Name, &b.Description); err != nil {
			return models.TeamDetails{}, err
		}
		team.Boards = append(team.Boards, b)
	}
	return team, boards.Err()
}
