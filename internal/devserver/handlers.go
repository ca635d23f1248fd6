package devserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thenoetrevino/taskdeck/internal/database"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// tasksEnvelope wraps the full task list the way the real API does
type tasksEnvelope struct {
	Data []models.Task `json:"data"`
}

// register wires up all API routes
func (s *Server) register() {
	s.e.GET("/healthz", s.healthz)

	api := s.e.Group(APIPrefix)
	api.GET("/boards", s.listBoards)
	api.GET("/boards/:id", s.listBoardTasks)
	api.GET("/teams", s.listTeams)
	api.GET("/teams/:id", s.getTeam)
	api.GET("/users", s.listUsers)
	api.GET("/users/:id/tasks", s.listUserTasks)
	api.GET("/tasks", s.listTasks)
	api.GET("/tasks/:id", s.getTask)
	api.POST("/tasks/create", s.createTask)
	api.PUT("/tasks/update/:id", s.updateTask)
	api.PUT("/tasks/updateStatus/:id", s.updateTaskStatus)
}

func (s *Server) healthz(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// ============================================================================
// Helpers
// ============================================================================

// pathID parses the :id path parameter
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id: "+c.Param("id"))
	}
	return id, nil
}

// storeError maps repository errors to HTTP errors
func storeError(err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error()).SetInternal(err)
	case errors.Is(err, database.ErrInvalidReference):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
	}
}

func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// ============================================================================
// Read handlers
// ============================================================================

func (s *Server) listBoards(c echo.Context) error {
	boards, err := s.store.ListBoards(c.Request().Context())
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, boards)
}

func (s *Server) listBoardTasks(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	tasks, err := s.store.ListBoardTasks(c.Request().Context(), id)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) listTeams(c echo.Context) error {
	teams, err := s.store.ListTeams(c.Request().Context())
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, teams)
}

func (s *Server) getTeam(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	team, err := s.store.GetTeam(c.Request().Context(), id)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, team)
}

func (s *Server) listUsers(c echo.Context) error {
	users, err := s.store.ListUsers(c.Request().Context())
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (s *Server) listUserTasks(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	tasks, err := s.store.ListUserTasks(c.Request().Context(), id)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) listTasks(c echo.Context) error {
	tasks, err := s.store.ListTasks(c.Request().Context())
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, tasksEnvelope{Data: tasks})
}

func (s *Server) getTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	task, err := s.store.GetTask(c.Request().Context(), id)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// ============================================================================
// Write handlers
// ============================================================================

func (s *Server) createTask(c echo.Context) error {
	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("malformed request body")
	}
	if strings.TrimSpace(req.Title) == "" {
		return badRequest("title is required")
	}
	if req.BoardID <= 0 {
		return badRequest("boardId is required")
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return badRequest("invalid priority: " + string(req.Priority))
	}

	id, err := s.store.CreateTask(c.Request().Context(), req)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, models.CreateTaskResponse{ID: id})
}

func (s *Server) updateTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req models.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("malformed request body")
	}
	if strings.TrimSpace(req.Title) == "" {
		return badRequest("title is required")
	}
	if !req.Priority.Valid() {
		return badRequest("invalid priority: " + string(req.Priority))
	}
	if !req.Status.Valid() {
		return badRequest("invalid status: " + string(req.Status))
	}

	if err := s.store.UpdateTask(c.Request().Context(), id, req); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Task updated"})
}

func (s *Server) updateTaskStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req models.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("malformed request body")
	}
	if !req.Status.Valid() {
		return badRequest("invalid status: " + string(req.Status))
	}

	if err := s.store.UpdateTaskStatus(c.Request().Context(), id, req.Status); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Task status updated"})
}
