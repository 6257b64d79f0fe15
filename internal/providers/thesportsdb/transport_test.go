package thesportsdb

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/providers"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com", "https://api.example.com"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	if resolveHTTPClient(custom) != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestRelayUsedAfterNetworkFailure(t *testing.T) {
	var relayed string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Host == "sports.example.com" {
			return nil, errors.New("connection refused")
		}
		relayed = req.URL.Query().Get("url")
		return jsonResponse(http.StatusOK, `{"contents": "{\"events\": [{\"idEvent\": \"7\", \"intHomeScore\": \"3\", \"intAwayScore\": \"1\"}]}", "status": {"http_code": 200}}`), nil
	})
	client := NewClient(Config{
		BaseURL:    "http://sports.example.com/api",
		RelayURL:   "http://relay.example.com/get",
		HTTPClient: &http.Client{Transport: rt},
	})

	got, err := client.FetchEventsByDay(context.Background(), leagues.NHL, "2024-01-14")
	if err != nil {
		t.Fatalf("expected relay success, got %v", err)
	}
	if relayed != "http://sports.example.com/api/3/eventsday.php?d=2024-01-14&l=4380" {
		t.Fatalf("unexpected relayed target %q", relayed)
	}
	if len(got) != 1 || got[0].SourceID != "thesportsdb-7" {
		t.Fatalf("unexpected events %+v", got)
	}
}

func TestRelayPreservesUpstreamStatus(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Host == "sports.example.com" {
			return nil, errors.New("dial tcp: timeout")
		}
		return jsonResponse(http.StatusOK, `{"contents": "slow down", "status": {"http_code": 429}}`), nil
	})
	client := NewClient(Config{
		BaseURL:    "http://sports.example.com",
		RelayURL:   "http://relay.example.com/get",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchEventsByDay(context.Background(), leagues.NBA, "2024-01-14")
	if _, ok := providers.AsRateLimitError(err); !ok {
		t.Fatalf("expected rate limit through relay, got %v", err)
	}
}

func TestTransportErrorWhenRelayFails(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("network down")
	})
	client := NewClient(Config{
		RelayURL:   "http://relay.example.com/get",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchEventsByDay(context.Background(), leagues.MLB, "2024-01-14")
	var tErr *providers.TransportError
	if !errors.As(err, &tErr) || !tErr.Relayed {
		t.Fatalf("expected relayed transport error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected direct plus one relay attempt, got %d", calls)
	}
}

func TestTransportErrorWithoutRelay(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchEventsByDay(context.Background(), leagues.MLB, "2024-01-14")
	var tErr *providers.TransportError
	if !errors.As(err, &tErr) || tErr.Relayed {
		t.Fatalf("expected direct transport error, got %v", err)
	}
}

func TestCancelledRequestIsNotRelayed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		cancel()
		return nil, context.Canceled
	})
	client := NewClient(Config{
		RelayURL:   "http://relay.example.com/get",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchEventsByDay(ctx, leagues.NBA, "2024-01-14")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if providers.IsTransportError(err) {
		t.Fatalf("cancellation must not be reported as transport failure")
	}
	if calls != 1 {
		t.Fatalf("expected no relay attempt, got %d calls", calls)
	}
}

func TestRelayEndpointKeepsExistingQuery(t *testing.T) {
	got, err := relayEndpoint("http://relay.example.com/raw?format=json", "http://a/b?x=1&y=2")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != "http://relay.example.com/raw?format=json&url=http%3A%2F%2Fa%2Fb%3Fx%3D1%26y%3D2" {
		t.Fatalf("unexpected endpoint %s", got)
	}
}
