package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ============================================================================
// Test helpers
// ============================================================================

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithRetryDelay(time.Millisecond)}, opts...)
	return New(srv.URL+"/api/v1", opts...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type recordedCall struct {
	endpoint string
	method   string
	status   int
	err      error
}

type fakeRecorder struct {
	mu      sync.Mutex
	calls   []recordedCall
	retries int
}

func (f *fakeRecorder) RecordAPICall(endpoint, method string, statusCode int, _ time.Duration, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{endpoint, method, statusCode, err})
}

func (f *fakeRecorder) IncRetries() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retries++
}

// ============================================================================
// Decoding
// ============================================================================

func TestListTasks_UnwrapsDataEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tasks", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []models.Task{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
		})
	})

	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "B", tasks[1].Title)
}

func TestListBoards_BareArrayAndEnvelope(t *testing.T) {
	boards := []models.Board{{ID: 1, Name: "Core", TaskCount: 3}}

	tests := []struct {
		name string
		body any
	}{
		{"bare array", boards},
		{"envelope", map[string]any{"data": boards}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})

			got, err := client.ListBoards(context.Background())
			require.NoError(t, err)
			assert.Equal(t, boards, got)
		})
	}
}

func TestDecodeList(t *testing.T) {
	items, err := decodeList[models.Board](json.RawMessage("null"))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items, err = decodeList[models.Board](json.RawMessage(`{"data":null}`))
	require.Error(t, err, "null data is not a list")
	assert.Nil(t, items)

	_, err = decodeList[models.Board](json.RawMessage(`{"items":[]}`))
	assert.Error(t, err)

	_, err = decodeList[models.Board](json.RawMessage(`[{"id":"x"}]`))
	assert.Error(t, err)
}

func TestListTasks_MalformedBodyIsServerError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"data": "nope"}`))
	})

	_, err := client.ListTasks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, int32(1), calls.Load(), "decode failures are not retried")
}

func TestGetTeam_Details(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/teams/3", r.URL.Path)
		writeJSON(w, http.StatusOK, models.TeamDetails{
			ID:     3,
			Name:   "Platform",
			Users:  []models.TeamMember{{ID: 1, FullName: "Ada"}},
			Boards: []models.TeamBoard{{ID: 2, Name: "Infra"}},
		})
	})

	team, err := client.GetTeam(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Platform", team.Name)
	assert.Equal(t, "Ada", team.Users[0].FullName)
	assert.Equal(t, "Infra", team.Boards[0].Name)
}

func TestListTasksForUser_Path(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/9/tasks", r.URL.Path)
		writeJSON(w, http.StatusOK, []models.Task{{ID: 4}})
	})

	tasks, err := client.ListTasksForUser(context.Background(), 9)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

// ============================================================================
// Headers and bodies
// ============================================================================

func TestRequestHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err, "X-Request-ID should be a uuid")
		writeJSON(w, http.StatusOK, []models.User{})
	})

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestCreateTask_ReturnsID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tasks/create", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "X", body["title"])
		assert.Equal(t, float64(1), body["assigneeId"])
		assert.Equal(t, float64(2), body["boardId"])

		writeJSON(w, http.StatusCreated, map[string]int{"id": 42})
	})

	id, err := client.CreateTask(context.Background(), models.CreateTaskRequest{
		Title: "X", Priority: models.PriorityHigh, AssigneeID: 1, BoardID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestUpdateTaskStatus_SendsStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/tasks/updateStatus/7", r.URL.Path)

		var body models.UpdateTaskStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.StatusDone, body.Status)

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "updated"})
	})

	msg, err := client.UpdateTaskStatus(context.Background(), 7, models.UpdateTaskStatusRequest{Status: models.StatusDone})
	require.NoError(t, err)
	assert.Equal(t, "updated", msg)
}

// ============================================================================
// Error classification and retry
// ============================================================================

func TestErrors_ByStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
		kind     Kind
	}{
		{"bad request", http.StatusBadRequest, ErrValidation, KindValidation},
		{"unprocessable", http.StatusUnprocessableEntity, ErrValidation, KindValidation},
		{"not found", http.StatusNotFound, ErrNotFound, KindNotFound},
		{"internal", http.StatusInternalServerError, ErrServer, KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]string{"message": "nope"})
			}, WithRetries(0))

			_, err := client.GetTask(context.Background(), 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, "nope", apiErr.Message())
		})
	}
}

func TestRetry_GetResubmittedOnServerError(t *testing.T) {
	var calls atomic.Int32
	rec := &fakeRecorder{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, []models.Board{{ID: 1}})
	}, WithRecorder(rec))

	boards, err := client.ListBoards(context.Background())
	require.NoError(t, err)
	assert.Len(t, boards, 1)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 1, rec.retries)
	require.Len(t, rec.calls, 2)
	assert.Equal(t, http.StatusServiceUnavailable, rec.calls[0].status)
	assert.Equal(t, "/boards", rec.calls[0].endpoint)
}

func TestRetry_GivesUpAfterConfiguredRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, WithRetries(2))

	_, err := client.UpdateTask(context.Background(), 1, models.UpdateTaskRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetry_PostNeverResubmitted(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, WithRetries(3))

	_, err := client.CreateTask(context.Background(), models.CreateTaskRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetry_ValidationNotResubmitted(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "title required"})
	}, WithRetries(3))

	_, err := client.UpdateTask(context.Background(), 1, models.UpdateTaskRequest{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTimeout_IsNetworkError(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}, WithTimeout(20*time.Millisecond), WithRetries(0))
	defer close(release)

	_, err := client.ListTeams(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.True(t, IsTimeout(err))
}

func TestConnectionRefused_IsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(url, WithRetries(0))
	_, err := client.ListBoards(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.NotEmpty(t, apiErr.Hint())
}

func TestCancelledContextStopsRetry(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		cancel()
		w.WriteHeader(http.StatusInternalServerError)
	}, WithRetries(5), WithRetryDelay(50*time.Millisecond))

	_, err := client.ListUsers(ctx)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
