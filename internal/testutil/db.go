package testutil

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskdeck/internal/app"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/database"
	"github.com/thenoetrevino/taskdeck/internal/devserver"
	"github.com/thenoetrevino/taskdeck/internal/logging"
)

// SetupTestDB creates an in-memory database with the demo data loaded
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.InitDB(ctx, database.MemoryPath)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Seed(ctx, db), "failed to seed test database")
	return db
}

// NewTestAPI serves the task API over a seeded in-memory database.
// The returned base URL includes the API prefix.
func NewTestAPI(t *testing.T) (baseURL string, db *sql.DB) {
	t.Helper()

	srv, db, err := devserver.Open(context.Background(), database.MemoryPath, true,
		devserver.WithLogger(logging.Discard()))
	require.NoError(t, err, "failed to open dev server")

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = db.Close()
	})

	return ts.URL + devserver.APIPrefix, db
}

// TestConfig returns a default config pointed at baseURL with retries off
func TestConfig(baseURL string) *config.Config {
	cfg := config.Default()
	cfg.API.BaseURL = baseURL
	retries := 0
	cfg.API.Retries = &retries
	return cfg
}

// NewTestApp returns an app wired to a fresh test API. The app is closed
// when the test ends.
func NewTestApp(t *testing.T, opts ...app.Option) (*app.App, *sql.DB) {
	t.Helper()

	baseURL, db := NewTestAPI(t)
	opts = append([]app.Option{app.WithLogger(logging.Discard())}, opts...)
	a := app.New(TestConfig(baseURL), opts...)
	t.Cleanup(func() { _ = a.Close() })

	return a, db
}
