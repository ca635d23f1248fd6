package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Client talks JSON over HTTP to the task API rooted at baseURL
type Client struct {
	baseURL    string
	http       *http.Client
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	recorder   Recorder
}

// New creates a client for the API rooted at baseURL (e.g. http://host/api/v1)
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{},
		timeout:    DefaultTimeout,
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client sends requests to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ============================================================================
// Boards
// ============================================================================

// ListBoards fetches all boards
func (c *Client) ListBoards(ctx context.Context) ([]models.Board, error) {
	return getList[models.Board](ctx, c, "/boards")
}

// ListTasksForBoard fetches the tasks of one board
func (c *Client) ListTasksForBoard(ctx context.Context, boardID int) ([]models.Task, error) {
	return getList[models.Task](ctx, c, "/boards/"+strconv.Itoa(boardID))
}

// ============================================================================
// Teams and users
// ============================================================================

// ListTeams fetches all teams
func (c *Client) ListTeams(ctx context.Context) ([]models.Team, error) {
	return getList[models.Team](ctx, c, "/teams")
}

// GetTeam fetches one team with its members and boards
func (c *Client) GetTeam(ctx context.Context, teamID int) (models.TeamDetails, error) {
	return getOne[models.TeamDetails](ctx, c, "/teams/"+strconv.Itoa(teamID))
}

// ListUsers fetches all users
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	return getList[models.User](ctx, c, "/users")
}

// ListTasksForUser fetches the tasks assigned to one user
func (c *Client) ListTasksForUser(ctx context.Context, userID int) ([]models.Task, error) {
	return getList[models.Task](ctx, c, "/users/"+strconv.Itoa(userID)+"/tasks")
}

// ============================================================================
// Tasks
// ============================================================================

// ListTasks fetches every task. The endpoint wraps the list in {data: [...]}.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	return getList[models.Task](ctx, c, "/tasks")
}

// GetTask fetches one task
func (c *Client) GetTask(ctx context.Context, taskID int) (models.Task, error) {
	return getOne[models.Task](ctx, c, "/tasks/"+strconv.Itoa(taskID))
}

// CreateTask creates a task and returns the server-assigned id.
// Never resubmitted: a retried POST could create the task twice.
func (c *Client) CreateTask(ctx context.Context, req models.CreateTaskRequest) (int, error) {
	var out models.CreateTaskResponse
	if err := c.do(ctx, http.MethodPost, "/tasks/create", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// UpdateTask replaces the editable fields of a task
func (c *Client) UpdateTask(ctx context.Context, taskID int, req models.UpdateTaskRequest) (string, error) {
	var out models.MessageResponse
	if err := c.do(ctx, http.MethodPut, "/tasks/update/"+strconv.Itoa(taskID), req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// UpdateTaskStatus changes only the status of a task
func (c *Client) UpdateTaskStatus(ctx context.Context, taskID int, req models.UpdateTaskStatusRequest) (string, error) {
	var out models.MessageResponse
	if err := c.do(ctx, http.MethodPut, "/tasks/updateStatus/"+strconv.Itoa(taskID), req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ============================================================================
// Transport
// ============================================================================

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	items, err := decodeList[T](raw)
	if err != nil {
		return nil, &APIError{Kind: KindServer, Method: http.MethodGet, Path: path, Err: err}
	}
	return items, nil
}

func getOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// decodeList accepts a bare JSON array or an object wrapping it in "data"
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	var items []T
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode list: %w", err)
		}
		return nonNil(items), nil
	}

	var envelope struct {
		Data *[]T `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode list envelope: %w", err)
	}
	if envelope.Data == nil {
		return nil, errors.New("list response has neither an array nor a data field")
	}
	return nonNil(*envelope.Data), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func idempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodPut
}

// do sends one logical request, resubmitting idempotent ones on transient failure
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	attempts := 1
	if idempotent(method) {
		attempts += c.retries
	}

	var lastErr *APIError
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * (1 << (attempt - 1))
			slog.Debug("retrying request",
				"method", method,
				"path", path,
				"attempt", attempt+1,
				"retry_delay", delay,
				"error", lastErr)
			if c.recorder != nil {
				c.recorder.IncRetries()
			}
			select {
			case <-ctx.Done():
				return lastErr
			case <-time.After(delay):
			}
		}

		apiErr := c.attempt(ctx, method, path, payload, out)
		if apiErr == nil {
			return nil
		}
		lastErr = apiErr
		if !apiErr.Retryable() || ctx.Err() != nil {
			break
		}
	}

	return lastErr
}

// attempt performs a single HTTP round trip bounded by the client timeout
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, out any) *APIError {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Kind: KindNetwork, Method: method, Path: path, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.record(path, method, 0, time.Since(start), err, requestID)
		return &APIError{Kind: Classify(0, err), Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	duration := time.Since(start)
	if err != nil {
		c.record(path, method, resp.StatusCode, duration, err, requestID)
		return &APIError{Kind: KindNetwork, Status: resp.StatusCode, Method: method, Path: path, Err: err}
	}
	c.record(path, method, resp.StatusCode, duration, nil, requestID)

	if resp.StatusCode >= 400 {
		return &APIError{
			Kind:   Classify(resp.StatusCode, nil),
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Body:   truncate(string(data), maxErrorBytes),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{
			Kind:   KindServer,
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Body:   truncate(string(data), maxErrorBytes),
			Err:    fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return nil
}

func (c *Client) record(path, method string, status int, d time.Duration, err error, requestID string) {
	slog.Debug("api request",
		"method", method,
		"path", path,
		"status", status,
		"duration", d,
		"request_id", requestID,
		"error", err)
	if c.recorder != nil {
		c.recorder.RecordAPICall(path, method, status, d, err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
