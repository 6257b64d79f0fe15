package server

import (
	"context"
	"fmt"

	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/gateway"
	"sports-gateway/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// warmer is the part of the gateway the refresh loop needs.
type warmer interface {
	FetchGamesForLeague(ctx context.Context, league leagues.League) gateway.GamesResult
	FetchHighlightsForLeague(ctx context.Context, league leagues.League, team string, targetCount int) gateway.HighlightsResult
}

// refreshFunc warms the games and highlights entries for a league. Serving the static dataset
// counts as a failure so readiness reflects upstream health.
func refreshFunc(gw warmer) poller.RefreshFunc {
	return func(ctx context.Context, league leagues.League) (int, error) {
		games := gw.FetchGamesForLeague(ctx, league)
		hl := gw.FetchHighlightsForLeague(ctx, league, "", 0)
		records := len(games.Records) + len(hl.Records)
		if games.Provenance == gateway.ProvenanceFallback {
			return records, fmt.Errorf("%s: served fallback data", league)
		}
		return records, nil
	}
}
