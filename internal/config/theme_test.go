package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/taskdeck/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}

	t.Setenv(EnvThemeFile, themePath)

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify theme was merged
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Edit != "#0000FF" {
		t.Errorf("Expected edit to be #0000FF, got %s", cfg.ColorScheme.Edit)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.ErrorBg == "" {
		t.Error("Expected ErrorBg color to have default value")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv(EnvThemeFile, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != colors.Default().Accent {
		t.Errorf("Expected default accent, got %s", cfg.ColorScheme.Accent)
	}
}

func TestPresetFillsMissingColors(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "dragon", Accent: "#123456"}
	scheme.ApplyDefaults()

	dragon := colors.Dragon()
	if scheme.Accent != "#123456" {
		t.Errorf("Expected explicit accent to be kept, got %s", scheme.Accent)
	}
	if scheme.PriorityHigh != dragon.PriorityHigh {
		t.Errorf("Expected dragon PriorityHigh %s, got %s", dragon.PriorityHigh, scheme.PriorityHigh)
	}
}

func TestUnknownPresetFallsBackToDefault(t *testing.T) {
	scheme := colors.GetPreset("solarized-ish")
	if scheme.Preset != "default" {
		t.Errorf("Expected default preset, got %s", scheme.Preset)
	}
}

func TestDefaultColorScheme(t *testing.T) {
	scheme := DefaultColorScheme()
	if scheme.Title == "" || scheme.StatusBarBg == "" {
		t.Error("Expected default scheme to have every color set")
	}
}
