package metrics

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskdeck"

// numeric path segments are collapsed so label cardinality stays bounded
var idSegment = regexp.MustCompile(`/\d+(/|$)`)

// Collectors holds the Prometheus view of the client metrics
type Collectors struct {
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	APIErrors          *prometheus.CounterVec
	MutationsTotal     *prometheus.CounterVec
	InvalidationsTotal prometheus.Counter
}

// NewCollectors creates and registers all collectors with the given registerer
func NewCollectors(registerer prometheus.Registerer) *Collectors {
	factory := promauto.With(registerer)

	return &Collectors{
		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of task API requests",
			},
			[]string{"endpoint", "method", "status"},
		),
		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Task API request duration in seconds",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "status"},
		),
		APIErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_errors_total",
				Help:      "Total number of task API errors",
			},
			[]string{"endpoint", "error_type"},
		),
		MutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mutations_total",
				Help:      "Local task mutations by outcome",
			},
			[]string{"outcome"},
		),
		InvalidationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invalidations_total",
				Help:      "Total number of published cache invalidations",
			},
		),
	}
}

// RecordAPICall records request count, latency and error type for one call
func (c *Collectors) RecordAPICall(endpoint, method string, statusCode int, duration time.Duration, err error) {
	endpoint = NormalizeEndpoint(endpoint)
	status := strconv.Itoa(statusCode)

	c.APIRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
	c.APIRequestDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())

	if err != nil || statusCode >= 400 {
		c.APIErrors.WithLabelValues(endpoint, ErrorType(statusCode, err)).Inc()
	}
}

// NormalizeEndpoint converts ids to a template
// Example: /tasks/update/42 -> /tasks/update/{id}
func NormalizeEndpoint(endpoint string) string {
	// Applied twice because adjacent matches share the separating slash
	out := idSegment.ReplaceAllString(endpoint, "/{id}$1")
	return idSegment.ReplaceAllString(out, "/{id}$1")
}

// ErrorType categorizes a failed call by status code, then by transport error
func ErrorType(statusCode int, err error) string {
	switch {
	case statusCode == 400:
		return "bad_request"
	case statusCode == 404:
		return "not_found"
	case statusCode == 408:
		return "request_timeout"
	case statusCode == 422:
		return "unprocessable_entity"
	case statusCode >= 400 && statusCode < 500:
		return "client_error"
	case statusCode == 502:
		return "bad_gateway"
	case statusCode == 503:
		return "service_unavailable"
	case statusCode >= 500 && statusCode < 600:
		return "server_error"
	}

	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "connection refused"):
			return "connection_refused"
		case strings.Contains(msg, "no such host"):
			return "dns_error"
		case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
			return "timeout"
		case strings.Contains(msg, "EOF"), strings.Contains(msg, "connection reset"):
			return "connection_reset"
		}
		return "network_error"
	}

	return "unknown"
}
