package providers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"sports-gateway/internal/domain/leagues"
)

func bytesContains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func TestRateLimitedProviderPassesThroughWithinBurst(t *testing.T) {
	fp := &flakeyProvider{}
	p := NewRateLimitedProvider(fp, 60, 3, nil)

	for i := 0; i < 3; i++ {
		if _, err := p.FetchEventsByDay(context.Background(), leagues.NBA, ""); err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", fp.calls)
	}
}

func TestRateLimitedProviderHonorsContext(t *testing.T) {
	fp := &flakeyProvider{}
	p := NewRateLimitedProvider(fp, 1, 1, nil).(*rateLimitedProvider)
	p.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

	if _, err := p.FetchEventsByDay(context.Background(), leagues.NBA, ""); err != nil {
		t.Fatalf("first call should use burst token: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := p.SearchTeams(ctx, "x"); err == nil {
		t.Fatalf("expected wait to fail when no token is available before the deadline")
	}
	if fp.calls != 1 {
		t.Fatalf("expected blocked call not to reach provider, got %d calls", fp.calls)
	}
}

func TestRateLimitedProviderNilNext(t *testing.T) {
	p := NewRateLimitedProvider(nil, 0, 0, nil)
	if _, err := p.LookupTeam(context.Background(), "1"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
