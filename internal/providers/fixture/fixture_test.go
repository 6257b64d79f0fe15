package fixture

import (
	"context"
	"errors"
	"testing"
	"time"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/providers"
)

func newFixed(t *testing.T) *Provider {
	t.Helper()
	p := New("UTC")
	p.now = func() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC) }
	return p
}

func TestDatasetLoadsForEveryLeague(t *testing.T) {
	p := newFixed(t)
	for _, l := range leagues.All() {
		evts := p.Events(l)
		if len(evts) == 0 {
			t.Fatalf("expected fixture events for %s", l)
		}
		completed, videos := 0, 0
		for _, e := range evts {
			if e.League != l {
				t.Fatalf("unexpected league %s in %s dataset", e.League, l)
			}
			if e.Completed() {
				completed++
			}
			if e.HasVideo() {
				videos++
			}
		}
		if completed < 3 || videos < 2 {
			t.Fatalf("%s: expected completed games and highlights, got %d/%d", l, completed, videos)
		}
	}
}

func TestEventsAreNewestFirst(t *testing.T) {
	evts := newFixed(t).Events(leagues.NBA)
	for i := 1; i < len(evts); i++ {
		if evts[i].Kickoff.After(*evts[i-1].Kickoff) {
			t.Fatalf("events not sorted at %d", i)
		}
	}
}

func TestFetchEventsByDayReturnsOnlyThatDay(t *testing.T) {
	p := newFixed(t)

	today, err := p.FetchEventsByDay(context.Background(), leagues.NFL, "2024-03-10")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(today) != 2 {
		t.Fatalf("expected 2 events today, got %d", len(today))
	}
	for _, e := range today {
		if e.DateLabel() != "2024-03-10" {
			t.Fatalf("unexpected date %s", e.DateLabel())
		}
	}
	if today[0].SourceID != "fixture:apisports-nfl-1" || *today[0].HomeScore != 24 {
		t.Fatalf("unexpected first event %+v", today[0].Game)
	}

	empty, err := p.FetchEventsByDay(context.Background(), leagues.NFL, "2024-03-05")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty day, got %d (%v)", len(empty), err)
	}
}

func TestFetchEventsByDayRejectsBadDate(t *testing.T) {
	if _, err := newFixed(t).FetchEventsByDay(context.Background(), leagues.NBA, "yesterday"); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestFetchEventsByDayHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newFixed(t).FetchEventsByDay(ctx, leagues.NBA, "2024-03-10"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestNHLFixtureScoresNormalized(t *testing.T) {
	evts, err := newFixed(t).FetchEventsByDay(context.Background(), leagues.NHL, "2024-03-10")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var found bool
	for _, e := range evts {
		if e.HomeTeam == "Boston Bruins" {
			found = true
			if !e.Completed() || e.Status != events.StatusFinal {
				t.Fatalf("expected completed final game, got %+v", e.Game)
			}
		}
		if e.HomeTeam == "Florida Panthers" && e.Status != events.StatusFinal {
			t.Fatalf("expected shootout result to be final, got %s", e.Status)
		}
	}
	if !found {
		t.Fatalf("expected Bruins game")
	}
}

func TestHighlightsForUnknownTeamAddsGenericEntry(t *testing.T) {
	p := newFixed(t)

	got := p.Highlights(leagues.NBA, "SAC")
	if got[0].Title != "Sacramento Kings Game Highlights" || got[0].VideoURL != demoVideoURL {
		t.Fatalf("expected generic highlight first, got %+v", got[0])
	}
	if !got[0].Involves("Sacramento Kings") {
		t.Fatalf("generic highlight should involve the team")
	}

	withTeam := p.Highlights(leagues.NBA, "Milwaukee Bucks")
	if len(withTeam) != len(p.Events(leagues.NBA)) {
		t.Fatalf("expected dataset unchanged when the team has highlights")
	}
}

func TestTeamsSearchAndLookup(t *testing.T) {
	p := newFixed(t)

	found, err := p.SearchTeams(context.Background(), "rangers")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected Texas and New York Rangers, got %+v", found)
	}

	team, err := p.LookupTeam(context.Background(), "nhl-bos")
	if err != nil || team.FullName != "Boston Bruins" {
		t.Fatalf("unexpected lookup result %+v (%v)", team, err)
	}
	if _, err := p.LookupTeam(context.Background(), "nope"); !errors.Is(err, providers.ErrTeamNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
