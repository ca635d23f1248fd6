package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, slog.LevelWarn)

	logger.Info("hidden")
	slog.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestInitWritesToHomeLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	closer, err := Init("debug")
	require.NoError(t, err)
	defer Discard()
	defer closer.Close()

	slog.Debug("hello from test")

	data, err := os.ReadFile(filepath.Join(home, ".taskdeck", "logs", "taskdeck.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	_, err := Init("chatty")
	assert.Error(t, err)
}
