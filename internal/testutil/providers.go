package testutil

import (
	"context"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/providers"
)

// GoodProvider returns the provided events and teams with no error.
type GoodProvider struct {
	Events []events.Highlight
	Teams  []teams.Team
}

func (p GoodProvider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	_ = ctx
	_ = league
	_ = date
	return p.Events, nil
}

func (p GoodProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	return p.Teams, nil
}

func (p GoodProvider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	for _, t := range p.Teams {
		if t.ID == id {
			return t, nil
		}
	}
	return teams.Team{}, providers.ErrTeamNotFound
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	return nil, p.Err
}

func (p ErrProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	return nil, p.Err
}

func (p ErrProvider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	return teams.Team{}, p.Err
}

// EmptyProvider returns nothing, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	return []events.Highlight{}, nil
}

func (EmptyProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	return []teams.Team{}, nil
}

func (EmptyProvider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	return teams.Team{}, providers.ErrTeamNotFound
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	return teams.Team{}, providers.ErrProviderUnavailable
}

// NotifyingProvider returns events and closes notify channel on first fetch.
type NotifyingProvider struct {
	Events []events.Highlight
	Notify chan struct{}
}

func (p *NotifyingProvider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	_ = ctx
	_ = league
	_ = date
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Events, nil
}

func (p *NotifyingProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	return nil, nil
}

func (p *NotifyingProvider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	return teams.Team{}, providers.ErrTeamNotFound
}
