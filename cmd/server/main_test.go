package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"sports-gateway/internal/gateway"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func setFixtureEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("DEFAULT_TIMEZONE", "UTC")
	t.Setenv("SCAN_MAX_DAYS", "3")
	t.Setenv("SCAN_DAY_DELAY", "1ms")
	t.Setenv("LOG_LEVEL", "error")
}

func runRoot(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	return out, root.Execute()
}

func TestFetchGamesPrintsJSON(t *testing.T) {
	setFixtureEnv(t)

	out, err := runRoot(t, "fetch", "games", "--league", "nba")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res gateway.GamesResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("expected JSON output, got %s: %v", out.String(), err)
	}
	if len(res.Records) == 0 {
		t.Fatalf("expected fixture games, got none")
	}
	if res.Provenance == "" {
		t.Fatalf("expected provenance in output")
	}
}

func TestFetchHighlightsPrintsJSON(t *testing.T) {
	setFixtureEnv(t)

	out, err := runRoot(t, "fetch", "highlights", "--league", "NHL", "--team", "BOS", "--count", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res gateway.HighlightsResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("expected JSON output, got %s: %v", out.String(), err)
	}
	if len(res.Records) > 2 {
		t.Fatalf("expected at most 2 highlights, got %d", len(res.Records))
	}
}

func TestFetchRejectsUnsupportedLeague(t *testing.T) {
	setFixtureEnv(t)

	if _, err := runRoot(t, "fetch", "games", "--league", "MLS"); err == nil {
		t.Fatalf("expected error for unsupported league")
	}
}

func TestFetchRequiresLeague(t *testing.T) {
	if _, err := runRoot(t, "fetch", "highlights"); err == nil {
		t.Fatalf("expected error when --league is missing")
	}
}
