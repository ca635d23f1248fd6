package database

import (
	"context"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// BoardRepository reads boards and their tasks
type BoardRepository interface {
	ListBoards(ctx context.Context) ([]models.Board, error)
	ListBoardTasks(ctx context.Context, boardID int) ([]models.Task, error)
}

// TeamRepository reads teams
type TeamRepository interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, id int) (models.TeamDetails, error)
}

// UserRepository reads users
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUserTasks(ctx context.Context, userID int) ([]models.Task, error)
}

// TaskRepository reads and writes tasks
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int) (models.Task, error)
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (int, error)
	UpdateTask(ctx context.Context, id int, req models.UpdateTaskRequest) error
	UpdateTaskStatus(ctx context.Context, id int, status models.Status) error
}

// DataStore defines the unified interface for all data operations needed by the
// development API server
type DataStore interface {
	BoardRepository
	TeamRepository
	UserRepository
	TaskRepository
}

var _ DataStore = (*Repository)(nil)
