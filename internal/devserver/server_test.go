package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskdeck/internal/database"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	srv, db, err := Open(context.Background(), database.MemoryPath, true, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return srv
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, APIPrefix+path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, APIPrefix+path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadEndpoints(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"boards", "/boards", http.StatusOK},
		{"board tasks", "/boards/1", http.StatusOK},
		{"unknown board", "/boards/99", http.StatusNotFound},
		{"malformed board id", "/boards/abc", http.StatusBadRequest},
		{"teams", "/teams", http.StatusOK},
		{"team", "/teams/1", http.StatusOK},
		{"unknown team", "/teams/99", http.StatusNotFound},
		{"users", "/users", http.StatusOK},
		{"user tasks", "/users/1/tasks", http.StatusOK},
		{"unknown user tasks", "/users/99/tasks", http.StatusNotFound},
		{"tasks", "/tasks", http.StatusOK},
		{"task", "/tasks/1", http.StatusOK},
		{"unknown task", "/tasks/99", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestListTasksUsesEnvelope(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode[tasksEnvelope](t, rec)
	assert.Len(t, env.Data, 8)
	assert.NotEmpty(t, env.Data[0].BoardName)
}

func TestBoardsCarryTaskCount(t *testing.T) {
	srv := newTestServer(t)

	boards := decode[[]models.Board](t, do(t, srv, http.MethodGet, "/boards", ""))
	require.NotEmpty(t, boards)
	assert.Equal(t, 3, boards[0].TaskCount)
}

func TestErrorBodyHasMessage(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/tasks/99", "")
	body := decode[map[string]string](t, rec)
	assert.Contains(t, body["message"], "not found")
}

func TestCreateTask(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/tasks/create",
		`{"title":"Ship it","priority":"High","assigneeId":1,"boardId":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.CreateTaskResponse](t, rec)
	assert.Positive(t, created.ID)

	task := decode[models.Task](t, do(t, srv, http.MethodGet, "/tasks/"+itoa(created.ID), ""))
	assert.Equal(t, "Ship it", task.Title)
	assert.Equal(t, models.StatusBacklog, task.Status)
	assert.Equal(t, "Web app", task.BoardName)
	assert.Equal(t, "Ada Byron", task.Assignee.FullName)
}

func TestCreateTaskValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"title":`},
		{"blank title", `{"title":"   ","boardId":1}`},
		{"missing board", `{"title":"x"}`},
		{"unknown board", `{"title":"x","boardId":99}`},
		{"unknown assignee", `{"title":"x","boardId":1,"assigneeId":99}`},
		{"bad priority", `{"title":"x","boardId":1,"priority":"Urgent"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/tasks/create", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestUpdateTask(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPut, "/tasks/update/2",
		`{"title":"Rotate certs","description":"all of them","priority":"Low","status":"Done","assigneeId":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Task updated", decode[models.MessageResponse](t, rec).Message)

	task := decode[models.Task](t, do(t, srv, http.MethodGet, "/tasks/2", ""))
	assert.Equal(t, "Rotate certs", task.Title)
	assert.Equal(t, models.StatusDone, task.Status)
	assert.Equal(t, models.PriorityLow, task.Priority)

	rec = do(t, srv, http.MethodPut, "/tasks/update/99",
		`{"title":"x","priority":"Low","status":"Done"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodPut, "/tasks/update/2",
		`{"title":"x","priority":"Low","status":"Blocked"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTaskStatus(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPut, "/tasks/updateStatus/1", `{"status":"Done"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	task := decode[models.Task](t, do(t, srv, http.MethodGet, "/tasks/1", ""))
	assert.Equal(t, models.StatusDone, task.Status)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPut, "/tasks/updateStatus/1", `{"status":"Later"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPut, "/tasks/updateStatus/99", `{"status":"Done"}`).Code)
}

func TestLatency(t *testing.T) {
	srv := newTestServer(t, WithLatency(30*time.Millisecond))

	start := time.Now()
	rec := do(t, srv, http.MethodGet, "/boards", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
