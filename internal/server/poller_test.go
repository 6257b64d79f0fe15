package server

import (
	"context"
	"testing"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/gateway"
)

type stubWarmer struct {
	games      gateway.GamesResult
	highlights gateway.HighlightsResult
	hlCalls    []string
}

func (s *stubWarmer) FetchGamesForLeague(ctx context.Context, league leagues.League) gateway.GamesResult {
	return s.games
}

func (s *stubWarmer) FetchHighlightsForLeague(ctx context.Context, league leagues.League, team string, targetCount int) gateway.HighlightsResult {
	s.hlCalls = append(s.hlCalls, team)
	return s.highlights
}

func TestRefreshFuncCountsRecords(t *testing.T) {
	w := &stubWarmer{
		games:      gateway.GamesResult{Records: make([]events.Game, 3), Provenance: gateway.ProvenanceFresh},
		highlights: gateway.HighlightsResult{Records: make([]events.Highlight, 2), Provenance: gateway.ProvenanceStale},
	}
	n, err := refreshFunc(w)(context.Background(), leagues.NBA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 records, got %d", n)
	}
	if len(w.hlCalls) != 1 || w.hlCalls[0] != "" {
		t.Fatalf("expected league-wide highlights warm, got %v", w.hlCalls)
	}
}

func TestRefreshFuncFailsOnFallback(t *testing.T) {
	w := &stubWarmer{games: gateway.GamesResult{Records: make([]events.Game, 4), Provenance: gateway.ProvenanceFallback}}
	n, err := refreshFunc(w)(context.Background(), leagues.MLB)
	if err == nil {
		t.Fatalf("expected fallback to be reported as failure")
	}
	if n != 4 {
		t.Fatalf("expected records still counted, got %d", n)
	}
}
