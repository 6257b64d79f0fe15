package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrUnauthorized is returned for 401/403 responses.
	ErrUnauthorized = errors.New("provider rejected credentials")
	// ErrTeamNotFound is returned when a team lookup yields nothing.
	ErrTeamNotFound = errors.New("team not found")
)

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// TransportError marks a network-level failure: the direct request failed and so did the relay,
// when one is configured.
type TransportError struct {
	Provider string
	URL      string
	Relayed  bool
	Err      error
}

func (e *TransportError) Error() string {
	via := "direct"
	if e.Relayed {
		via = "relay"
	}
	return fmt.Sprintf("%s transport failure (%s): %v", e.Provider, via, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransportError reports whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// UpstreamError captures an unexpected non-2xx response.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Retryable reports whether the upstream failure is worth retrying (5xx).
func (e *UpstreamError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// IsRetryable reports whether err should be retried by the retrying provider.
// Rate limits, transport failures, and auth failures are owned by callers and never retried here.
func IsRetryable(err error) bool {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Retryable()
	}
	return false
}
