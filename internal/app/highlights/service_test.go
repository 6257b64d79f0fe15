package highlights

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/gateway"
	"sports-gateway/internal/testutil"
)

type stubSource struct {
	mu       sync.Mutex
	requests []Favorite
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (s *stubSource) FetchHighlightsForLeague(ctx context.Context, league leagues.League, team string, targetCount int) gateway.HighlightsResult {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	s.mu.Lock()
	s.requests = append(s.requests, Favorite{League: league, Team: team})
	s.mu.Unlock()

	recs := make([]events.Highlight, 0, targetCount)
	for i := 0; i < targetCount; i++ {
		recs = append(recs, testutil.SampleHighlight(team, time.Now()))
	}
	return gateway.HighlightsResult{Records: recs, Provenance: gateway.ProvenanceFresh}
}

func TestHighlightsPassThrough(t *testing.T) {
	src := &stubSource{}
	svc := NewService(src)

	res := svc.Highlights(context.Background(), leagues.NBA, "LAL", 3)
	if len(res.Records) != 3 {
		t.Fatalf("expected 3 highlights, got %d", len(res.Records))
	}
	if len(src.requests) != 1 || src.requests[0].Team != "LAL" {
		t.Fatalf("unexpected requests %+v", src.requests)
	}
}

func TestForTeamsKeepsOrderAndSkipsUnsupported(t *testing.T) {
	src := &stubSource{}
	svc := NewService(src)
	favs := []Favorite{
		{League: leagues.NBA, Team: "LAL"},
		{League: leagues.League("XFL"), Team: "DC"},
		{League: leagues.NFL, Team: "KC"},
		{League: leagues.NHL, Team: "BOS"},
		{League: leagues.MLB, Team: "NYY"},
		{League: leagues.NBA, Team: "BOS"},
		{League: leagues.NFL, Team: "SF"},
	}

	out := svc.ForTeams(context.Background(), favs, 2)
	if len(out) != 6 {
		t.Fatalf("expected 6 supported favorites, got %d", len(out))
	}
	if out[0].Team != "LAL" || out[1].Team != "KC" || out[5].Team != "SF" {
		t.Fatalf("expected input order preserved, got %+v", out)
	}
	for _, th := range out {
		if len(th.Records) != 2 {
			t.Fatalf("expected 2 highlights for %s, got %d", th.Team, len(th.Records))
		}
	}
	if peak := src.peak.Load(); peak > maxConcurrent {
		t.Fatalf("expected at most %d concurrent fetches, saw %d", maxConcurrent, peak)
	}
}
