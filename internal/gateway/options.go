package gateway

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the API root used when nothing is configured
	DefaultBaseURL = "http://localhost:8080/api/v1"
	// DefaultTimeout bounds every request
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is how many times an idempotent request is resubmitted
	DefaultRetries = 1
	// DefaultRetryDelay is the first backoff delay, doubled per attempt
	DefaultRetryDelay = 200 * time.Millisecond

	maxBodyBytes  = 4 << 20
	maxErrorBytes = 512
)

// Recorder receives one call per HTTP attempt
type Recorder interface {
	RecordAPICall(endpoint, method string, statusCode int, duration time.Duration, err error)
	IncRetries()
}

// Option is a functional option for configuring a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries sets how many times GET and PUT requests are resubmitted
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithRetryDelay sets the initial backoff between attempts
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithHTTPClient replaces the underlying *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}
