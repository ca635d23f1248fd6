package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/thenoetrevino/taskdeck/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient         events.EventPublisher
	logger              *slog.Logger
	httpClient          *http.Client
	registerer          prometheus.Registerer
	refetchOnInvalidate bool
}

// WithEventPublisher sets the event publisher for the application.
// Without it the app creates its own in-process bus.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithHTTPClient sets the HTTP client used by the gateway
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = hc
	}
}

// WithRegisterer registers Prometheus collectors on reg
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(cfg *appConfig) {
		cfg.registerer = reg
	}
}

// WithRefetchOnInvalidate reloads the task store in the background
// whenever the task list is invalidated
func WithRefetchOnInvalidate(on bool) Option {
	return func(cfg *appConfig) {
		cfg.refetchOnInvalidate = on
	}
}
