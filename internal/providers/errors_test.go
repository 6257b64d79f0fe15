package providers

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{StatusCode: 429, RetryAfter: time.Second}
	if err.Error() != "provider rate limited (status=429)" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	custom := &RateLimitError{Message: "slow down"}
	if custom.Error() != "slow down" {
		t.Fatalf("unexpected message %q", custom.Error())
	}
}

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("fetch: %w", &RateLimitError{StatusCode: 429})
	rl, ok := AsRateLimitError(wrapped)
	if !ok || rl.StatusCode != 429 {
		t.Fatalf("expected wrapped rate limit error, got %v", rl)
	}
	if _, ok := AsRateLimitError(errors.New("boom")); ok {
		t.Fatalf("did not expect rate limit error")
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := fmt.Errorf("day 2: %w", &TransportError{Provider: "thesportsdb", Relayed: true, Err: inner})
	if !IsTransportError(err) {
		t.Fatalf("expected transport error")
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected transport error to unwrap to inner error")
	}
	if IsTransportError(errors.New("other")) {
		t.Fatalf("did not expect transport error")
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"server error", &UpstreamError{StatusCode: 503}, true},
		{"wrapped server error", fmt.Errorf("x: %w", &UpstreamError{StatusCode: 500}), true},
		{"client error", &UpstreamError{StatusCode: 404}, false},
		{"rate limit", &RateLimitError{StatusCode: 429}, false},
		{"transport", &TransportError{Err: errors.New("x")}, false},
		{"unauthorized", ErrUnauthorized, false},
		{"plain", errors.New("decode"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRetryable(tc.err); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
