package gateway

import (
	"context"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Gateway is the typed view of the remote task API
type Gateway interface {
	ListBoards(ctx context.Context) ([]models.Board, error)
	ListTasksForBoard(ctx context.Context, boardID int) ([]models.Task, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, teamID int) (models.TeamDetails, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListTasksForUser(ctx context.Context, userID int) ([]models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, taskID int) (models.Task, error)
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (int, error)
	UpdateTask(ctx context.Context, taskID int, req models.UpdateTaskRequest) (string, error)
	UpdateTaskStatus(ctx context.Context, taskID int, req models.UpdateTaskStatusRequest) (string, error)
}

// Compile-time verification that *Client implements Gateway
var _ Gateway = (*Client)(nil)
