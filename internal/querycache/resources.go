package querycache

import (
	"context"
	"time"

	"github.com/thenoetrevino/taskdeck/internal/events"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Source is the subset of the gateway the read caches fetch through
type Source interface {
	ListBoards(ctx context.Context) ([]models.Board, error)
	ListTasksForBoard(ctx context.Context, boardID int) ([]models.Task, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	GetTeam(ctx context.Context, teamID int) (models.TeamDetails, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListTasksForUser(ctx context.Context, userID int) ([]models.Task, error)
	GetTask(ctx context.Context, taskID int) (models.Task, error)
}

// Resources holds one cache per read-only resource of the API.
// Aggregates such as Board.TaskCount come from the server as-is and are
// refreshed only by refetching.
type Resources struct {
	src Source

	Boards     *Cache[[]models.Board]
	BoardTasks *Cache[[]models.Task]
	Teams      *Cache[[]models.Team]
	Team       *Cache[models.TeamDetails]
	Users      *Cache[[]models.User]
	UserTasks  *Cache[[]models.Task]
	Task       *Cache[models.Task]
}

// NewResources creates the caches and a registry covering all of them
func NewResources(src Source, staleTime time.Duration) (*Resources, *Registry) {
	r := &Resources{
		src:        src,
		Boards:     New[[]models.Board]("boards", staleTime),
		BoardTasks: New[[]models.Task]("board_tasks", staleTime),
		Teams:      New[[]models.Team]("teams", staleTime),
		Team:       New[models.TeamDetails]("team", staleTime),
		Users:      New[[]models.User]("users", staleTime),
		UserTasks:  New[[]models.Task]("user_tasks", staleTime),
		Task:       New[models.Task]("task", staleTime),
	}
	reg := NewRegistry(r.Boards, r.BoardTasks, r.Teams, r.Team, r.Users, r.UserTasks, r.Task)
	return r, reg
}

// ListBoards returns the cached board list
func (r *Resources) ListBoards(ctx context.Context) ([]models.Board, error) {
	return r.Boards.Get(ctx, events.BoardsKey(), r.src.ListBoards)
}

// ListTasksForBoard returns the cached task list of one board
func (r *Resources) ListTasksForBoard(ctx context.Context, boardID int) ([]models.Task, error) {
	return r.BoardTasks.Get(ctx, events.BoardTasksKey(boardID), func(ctx context.Context) ([]models.Task, error) {
		return r.src.ListTasksForBoard(ctx, boardID)
	})
}

// ListTeams returns the cached team list
func (r *Resources) ListTeams(ctx context.Context) ([]models.Team, error) {
	return r.Teams.Get(ctx, events.TeamsKey(), r.src.ListTeams)
}

// GetTeam returns the cached details of one team
func (r *Resources) GetTeam(ctx context.Context, teamID int) (models.TeamDetails, error) {
	return r.Team.Get(ctx, events.TeamKey(teamID), func(ctx context.Context) (models.TeamDetails, error) {
		return r.src.GetTeam(ctx, teamID)
	})
}

// ListUsers returns the cached user list
func (r *Resources) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.Users.Get(ctx, events.UsersKey(), r.src.ListUsers)
}

// ListTasksForUser returns the cached task list of one user
func (r *Resources) ListTasksForUser(ctx context.Context, userID int) ([]models.Task, error) {
	return r.UserTasks.Get(ctx, events.UserTasksKey(userID), func(ctx context.Context) ([]models.Task, error) {
		return r.src.ListTasksForUser(ctx, userID)
	})
}

// GetTask returns one cached task
func (r *Resources) GetTask(ctx context.Context, taskID int) (models.Task, error) {
	return r.Task.Get(ctx, events.TaskKey(taskID), func(ctx context.Context) (models.Task, error) {
		return r.src.GetTask(ctx, taskID)
	})
}

// UsersSnapshot returns the last fetched user list without a network call
func (r *Resources) UsersSnapshot() []models.User {
	users, _ := r.Users.Peek(events.UsersKey())
	return users
}
