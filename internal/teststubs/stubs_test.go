package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"sports-gateway/internal/cache"
	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/providers"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Events: []events.Highlight{{Game: events.Game{SourceID: "g1"}}}, Err: err}
	if _, got := p.FetchEventsByDay(context.Background(), leagues.NBA, "2024-01-01"); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubProviderTeams(t *testing.T) {
	p := &StubProvider{Teams: []teams.Team{{ID: "134860", FullName: "Boston Celtics"}}}
	got, err := p.SearchTeams(context.Background(), "celtics")
	if err != nil || len(got) != 1 {
		t.Fatalf("expected one match, got %v err %v", got, err)
	}
	if _, err := p.LookupTeam(context.Background(), "missing"); !errors.Is(err, providers.ErrTeamNotFound) {
		t.Fatalf("expected team not found, got %v", err)
	}
}

func TestScriptedProviderOrder(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	p := &ScriptedProvider{
		Days:     map[string]Response{"2024-03-10": OK(events.Highlight{Game: events.Game{SourceID: "a"}})},
		Sequence: []Response{RateLimited(time.Second), NetworkDown()},
		Default:  Empty(),
		Now:      func() time.Time { return now },
	}
	ctx := context.Background()

	if got, err := p.FetchEventsByDay(ctx, leagues.NFL, "2024-03-10"); err != nil || len(got) != 1 {
		t.Fatalf("expected scripted day, got %v err %v", got, err)
	}
	if _, err := p.FetchEventsByDay(ctx, leagues.NFL, "2024-03-09"); err == nil {
		t.Fatalf("expected rate limit")
	} else if _, ok := providers.AsRateLimitError(err); !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if _, err := p.FetchEventsByDay(ctx, leagues.NFL, "2024-03-08"); !providers.IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if got, err := p.FetchEventsByDay(ctx, leagues.NFL, "2024-03-07"); err != nil || len(got) != 0 {
		t.Fatalf("expected default empty day, got %v err %v", got, err)
	}

	calls := p.Calls()
	if len(calls) != 4 || p.CallCount() != 4 {
		t.Fatalf("expected 4 calls, got %d", len(calls))
	}
	if calls[1].Date != "2024-03-09" || !calls[1].At.Equal(now) || calls[1].League != leagues.NFL {
		t.Fatalf("unexpected call record %+v", calls[1])
	}
}

func TestScriptedProviderHonorsCancelledContext(t *testing.T) {
	p := &ScriptedProvider{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.FetchEventsByDay(ctx, leagues.NBA, "2024-01-01"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if p.CallCount() != 0 {
		t.Fatalf("expected cancelled call to go unrecorded")
	}
}

func TestStubStore(t *testing.T) {
	ctx := context.Background()
	s := &StubStore{}
	if _, err := s.Get(ctx, "games:NBA:all"); !errors.Is(err, cache.ErrMiss) {
		t.Fatalf("expected miss, got %v", err)
	}
	if err := s.Set(ctx, "games:NBA:all", cache.Entry{Data: []byte(`[]`)}); err != nil {
		t.Fatalf("unexpected set error %v", err)
	}
	if n, _ := s.DeletePrefix(ctx, "games:NBA:"); n != 1 {
		t.Fatalf("expected one deleted entry, got %d", n)
	}

	s.SetErr = errors.New("disk full")
	if err := s.Set(ctx, "k", cache.Entry{}); !errors.Is(err, s.SetErr) {
		t.Fatalf("expected set error, got %v", err)
	}
	if s.Sets != 2 {
		t.Fatalf("expected two set attempts, got %d", s.Sets)
	}
}
