package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/taskdeck/internal/config/colors"
)

const appName = "taskdeck"

// Defaults for values missing from the config file
const (
	DefaultBaseURL   = "http://localhost:8080/api/v1"
	DefaultTimeout   = 10 * time.Second
	DefaultRetries   = 1
	DefaultStaleTime = 5 * time.Minute
	DefaultLogLevel  = "info"
	DefaultLocale    = "en"
)

// Environment variables that override the config file
const (
	EnvAPIURL    = "TASKDECK_API_URL"
	EnvLogLevel  = "TASKDECK_LOG_LEVEL"
	EnvThemeFile = "TASKDECK_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	API         APIConfig          `yaml:"api"`
	Cache       CacheConfig        `yaml:"cache"`
	Log         LogConfig          `yaml:"log"`
	Locale      string             `yaml:"locale"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// APIConfig configures the remote task API
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// Retries is a pointer so an explicit 0 survives applyDefaults
	Retries *int `yaml:"retries,omitempty"`
}

// CacheConfig configures the read caches
type CacheConfig struct {
	StaleTime time.Duration `yaml:"stale_time"`
}

// LogConfig configures the log file
type LogConfig struct {
	Level string `yaml:"level"`
}

// RetryCount returns the configured retries, or the default
func (a APIConfig) RetryCount() int {
	if a.Retries == nil {
		return DefaultRetries
	}
	return *a.Retries
}

// Default returns a config with every value at its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme from TASKDECK_THEME_FILE, if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies environment overrides
func applyEnv(config *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Log.Level = v
	}
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Can't determine the config path, run on defaults
		return LoadFrom("")
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path. An empty path or a missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	var config Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.API.Retries == nil || *c.API.Retries < 0 {
		retries := DefaultRetries
		c.API.Retries = &retries
	}
	if c.Cache.StaleTime <= 0 {
		c.Cache.StaleTime = DefaultStaleTime
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
