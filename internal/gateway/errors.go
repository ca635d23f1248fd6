package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failed API call
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNetwork
	KindNotFound
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not found"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per Kind. An *APIError unwraps to the matching one
// so callers can use errors.Is without inspecting the struct.
var (
	ErrValidation = errors.New("validation error")
	ErrNetwork    = errors.New("network error")
	ErrNotFound   = errors.New("not found")
	ErrServer     = errors.New("server error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindNetwork:
		return ErrNetwork
	case KindNotFound:
		return ErrNotFound
	default:
		return ErrServer
	}
}

// APIError represents a failed call to the task API with request context
type APIError struct {
	Kind   Kind
	Status int    // HTTP status, 0 when no response was received
	Method string
	Path   string
	Body   string // Response body, truncated
	Err    error  // Transport or decode error, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s", e.Method, e.Path, e.Kind)
	if e.Status != 0 {
		fmt.Fprintf(&b, " (%d)", e.Status)
	}
	if msg := e.Message(); msg != "" {
		b.WriteString(": " + msg)
	} else if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause
func (e *APIError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind.sentinel(), e.Err}
	}
	return []error{e.Kind.sentinel()}
}

// Message extracts the server-provided message from a JSON error body
func (e *APIError) Message() string {
	if e.Body == "" {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(e.Body), &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// Hint suggests what the user can do about the failure
func (e *APIError) Hint() string {
	switch e.Kind {
	case KindNetwork:
		return "Check that the API is running and api.base_url in the config points at it"
	case KindNotFound:
		return "The item may have been removed, refresh and try again"
	case KindServer:
		return "The server failed to process the request, try again later"
	default:
		return ""
	}
}

// Retryable reports whether resubmitting the same request may succeed
func (e *APIError) Retryable() bool {
	return e.Kind == KindNetwork || (e.Kind == KindServer && e.Status >= 500)
}

// Classify maps a status code and transport error to a Kind.
// Any transport error (including timeouts) is a network failure.
func Classify(status int, err error) Kind {
	if err != nil {
		return KindNetwork
	}
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}

// KindOf returns the Kind of err when it carries an *APIError
func KindOf(err error) (Kind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsTimeout reports whether err is a deadline expiry
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
