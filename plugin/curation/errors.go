package curation

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the remote recommendation path. They never reach
// the engine's callers: the service layer converts every one of them
// into a fallback result.
var (
	// ErrNotConfigured indicates no remote service URL is set.
	ErrNotConfigured = errors.New("ai service not configured")

	// ErrEmptySelection indicates the remote response contained no
	// usable selections after validation.
	ErrEmptySelection = errors.New("ai returned no valid selections")

	// ErrInvalidResponse indicates the remote response failed schema
	// or domain validation.
	ErrInvalidResponse = errors.New("ai response failed validation")
)

// ServiceError is a remote failure carrying the HTTP status code and
// raw response body for diagnostics. Whether it is retryable depends on
// the status: server-side failures and throttling are transient, other
// client errors are permanent.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ai service error: status=%d body=%s", e.StatusCode, e.Body)
}

// Retryable reports whether another attempt may succeed.
func (e *ServiceError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// isRetryable classifies an error for the retry loop. Transport-level
// failures (network errors, timeouts) are always retryable; HTTP-level
// failures defer to the status code; validation failures and caller
// cancellation are permanent.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrInvalidResponse) || errors.Is(err, ErrEmptySelection) || errors.Is(err, context.Canceled) {
		return false
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.Retryable()
	}
	// Anything else at this point came out of the HTTP round trip:
	// connection refused, DNS failure, aborted request.
	return true
}
