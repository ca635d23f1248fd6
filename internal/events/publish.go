package events

import (
	"errors"
	"log/slog"
	"time"
)

// PublishWithRetry attempts to publish an event with retry logic.
// It makes up to maxRetries attempts with exponential backoff.
// Returns the error from the final attempt if all retries fail.
//
// The in-process Bus only fails once closed, which stops the loop at once;
// the backoff serves publishers supplied through app.WithEventPublisher.
// Invalidation is best effort: a lost event leaves a cache stale until its
// stale time passes, so callers log the returned error instead of failing
// the mutation.
func PublishWithRetry(pub EventPublisher, event Event, maxRetries int) error {
	if pub == nil {
		return nil // No bus wired (CLI one-shot commands, tests)
	}

	var lastErr error
	baseDelay := 50 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := pub.Publish(event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry",
					"attempt", attempt+1,
					"event_type", event.Type,
					"task_id", event.TaskID)
			}
			return nil
		}

		lastErr = err

		// A closed bus will never accept the event
		if errors.Is(err, ErrBusClosed) {
			break
		}

		if attempt < maxRetries-1 {
			// Exponential backoff: 50ms, 100ms, 200ms
			delay := baseDelay * (1 << attempt)
			slog.Debug("event publish failed, retrying",
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}
	}

	return lastErr
}
