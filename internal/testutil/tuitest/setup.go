// Package tuitest builds TUI models backed by a seeded test API.
package tuitest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskdeck/internal/app"
	"github.com/thenoetrevino/taskdeck/internal/testutil"
	"github.com/thenoetrevino/taskdeck/internal/tui"
)

// ErrWritesRejected is returned by a transport that refuses writes
var ErrWritesRejected = errors.New("writes rejected")

// rejectWrites fails every request that is not a GET
type rejectWrites struct {
	base http.RoundTripper
}

func (r rejectWrites) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return nil, ErrWritesRejected
	}
	return r.base.RoundTrip(req)
}

// ReadOnlyClient returns an HTTP client whose writes always fail
func ReadOnlyClient() *http.Client {
	return &http.Client{Transport: rejectWrites{base: http.DefaultTransport}}
}

// NewModel returns a model whose initial load has completed, sized to
// width x height. The store subscription is marked started so Update
// returns only the commands of the message under test.
func NewModel(t *testing.T, width, height int, opts ...app.Option) *tui.Model {
	t.Helper()

	a, _ := testutil.NewTestApp(t, opts...)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := tui.InitialModel(ctx, a)
	t.Cleanup(m.Close)
	m.SubscriptionStarted = true
	m.UiState.SetSize(width, height)

	require.NoError(t, a.LoadInitial(ctx))
	boards, err := a.Resources.ListBoards(ctx)
	require.NoError(t, err)

	m.Snapshot = a.Store.Snapshot()
	m.Users = a.Resources.UsersSnapshot()
	m.SetBoards(boards)
	m.SyncShadow()
	return &m
}

// Key builds a key press for a printable key
func Key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

// Special builds a key press for a named key such as tea.KeyEsc
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// Ctrl builds a ctrl+<r> key press
func Ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl})
}
