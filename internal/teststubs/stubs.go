package teststubs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"sports-gateway/internal/cache"
	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/providers"
)

// StubProvider is a test double for providers.DataProvider returning the same answer every call.
type StubProvider struct {
	Events []events.Highlight
	Teams  []teams.Team
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchEventsByDay returns configured events and error while tracking calls.
func (s *StubProvider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	_ = ctx
	_ = league
	_ = date
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Events, s.Err
}

// SearchTeams returns configured teams whose name contains the query.
func (s *StubProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	q := strings.ToLower(name)
	out := make([]teams.Team, 0, len(s.Teams))
	for _, t := range s.Teams {
		if strings.Contains(strings.ToLower(t.FullName), q) {
			out = append(out, t)
		}
	}
	return out, nil
}

// LookupTeam returns the configured team with the given id.
func (s *StubProvider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	if s.Err != nil {
		return teams.Team{}, s.Err
	}
	for _, t := range s.Teams {
		if t.ID == id {
			return t, nil
		}
	}
	return teams.Team{}, providers.ErrTeamNotFound
}

// Response is one scripted provider answer.
type Response struct {
	Events []events.Highlight
	Err    error
}

// OK answers with events.
func OK(evts ...events.Highlight) Response {
	return Response{Events: evts}
}

// Empty answers with an empty day.
func Empty() Response {
	return Response{Events: []events.Highlight{}}
}

// RateLimited answers with a 429 carrying retryAfter.
func RateLimited(retryAfter time.Duration) Response {
	return Response{Err: &providers.RateLimitError{Provider: "stub", StatusCode: 429, RetryAfter: retryAfter}}
}

// NetworkDown answers with a transport failure after the relay also failed.
func NetworkDown() Response {
	return Response{Err: &providers.TransportError{Provider: "stub", Relayed: true, Err: errors.New("connection refused")}}
}

// Call records one provider request.
type Call struct {
	League leagues.League
	Date   string
	At     time.Time
}

// ScriptedProvider answers day queries from a script. Days takes precedence, then Sequence is
// consumed in order, then Default.
type ScriptedProvider struct {
	Days     map[string]Response
	Sequence []Response
	Default  Response
	// Now stamps recorded calls; nil leaves At zero.
	Now func() time.Time

	Teams   []teams.Team
	TeamErr error

	mu    sync.Mutex
	next  int
	calls []Call
}

// FetchEventsByDay returns the scripted answer for date.
func (s *ScriptedProvider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	call := Call{League: league, Date: date}
	if s.Now != nil {
		call.At = s.Now()
	}
	s.calls = append(s.calls, call)

	if resp, ok := s.Days[date]; ok {
		return resp.Events, resp.Err
	}
	if s.next < len(s.Sequence) {
		resp := s.Sequence[s.next]
		s.next++
		return resp.Events, resp.Err
	}
	return s.Default.Events, s.Default.Err
}

// SearchTeams returns configured teams whose name contains the query.
func (s *ScriptedProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	stub := &StubProvider{Teams: s.Teams, Err: s.TeamErr}
	return stub.SearchTeams(ctx, name)
}

// LookupTeam returns the configured team with the given id.
func (s *ScriptedProvider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	stub := &StubProvider{Teams: s.Teams, Err: s.TeamErr}
	return stub.LookupTeam(ctx, id)
}

// Calls returns every recorded request in order.
func (s *ScriptedProvider) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of recorded requests.
func (s *ScriptedProvider) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// StubStore is an in-memory cache.Store with injectable failures.
type StubStore struct {
	GetErr error
	SetErr error

	mu      sync.Mutex
	entries map[string]cache.Entry
	Sets    int
}

// Get returns the stored entry or cache.ErrMiss.
func (s *StubStore) Get(ctx context.Context, key string) (cache.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return cache.Entry{}, s.GetErr
	}
	e, ok := s.entries[key]
	if !ok {
		return cache.Entry{}, cache.ErrMiss
	}
	return e, nil
}

// Set stores entry under key unless SetErr is configured.
func (s *StubStore) Set(ctx context.Context, key string, entry cache.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sets++
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.entries == nil {
		s.entries = make(map[string]cache.Entry)
	}
	s.entries[key] = entry
	return nil
}

// Delete removes key.
func (s *StubStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// DeletePrefix removes every key starting with prefix.
func (s *StubStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
			n++
		}
	}
	return n, nil
}
