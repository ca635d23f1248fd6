package cli

import (
	"errors"

	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/mutation"
)

// Classify maps an error to an exit code, a machine readable error code
// and an optional suggestion
func Classify(err error) (exitCode int, code string, suggestion string) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		suggestion = apiErr.Hint()
	}

	switch {
	case errors.Is(err, gateway.ErrValidation),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidPriority):
		return ExitValidation, "VALIDATION_ERROR", suggestion
	case errors.Is(err, models.ErrAlreadyFirstColumn),
		errors.Is(err, models.ErrAlreadyLastColumn):
		return ExitValidation, "NO_ADJACENT_COLUMN", suggestion
	case errors.Is(err, gateway.ErrNotFound),
		errors.Is(err, mutation.ErrTaskNotFound):
		return ExitNotFound, "NOT_FOUND", suggestion
	case errors.Is(err, gateway.ErrNetwork):
		return ExitError, "NETWORK_ERROR", suggestion
	case errors.Is(err, gateway.ErrServer):
		return ExitError, "SERVER_ERROR", suggestion
	default:
		return ExitError, "ERROR", suggestion
	}
}

// Fail reports err through the formatter and returns it with its exit code
func (f *OutputFormatter) Fail(err error) error {
	exitCode, code, suggestion := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return Exit(ExitError, fmtErr)
	}
	return Exit(exitCode, err)
}

// Usage reports a usage error and returns it with ExitUsage
func (f *OutputFormatter) Usage(code, message, suggestion string) error {
	err := errors.New(message)
	if fmtErr := f.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		return Exit(ExitError, fmtErr)
	}
	return Exit(ExitUsage, err)
}
