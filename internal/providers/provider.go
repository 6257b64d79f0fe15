package providers

import (
	"context"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
)

// EventProvider fetches one calendar day of events for a league and normalizes them.
// The date parameter is a YYYY-MM-DD string. Events carry media fields when upstream has them;
// callers that only need games read the embedded Game.
type EventProvider interface {
	FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error)
}

// TeamProvider searches and looks up teams upstream.
type TeamProvider interface {
	SearchTeams(ctx context.Context, name string) ([]teams.Team, error)
	LookupTeam(ctx context.Context, id string) (teams.Team, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	EventProvider
	TeamProvider
}
