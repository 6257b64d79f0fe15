package schedule

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/gateway"
)

// Source defines the contract for fetching a league's recent games.
type Source interface {
	FetchGamesForLeague(ctx context.Context, league leagues.League) gateway.GamesResult
}

// LeagueGames pairs a league with its gateway result.
type LeagueGames struct {
	League leagues.League
	gateway.GamesResult
}

// Service coordinates game queries using a Source.
type Service struct {
	source Source
}

// NewService constructs a Service with the provided Source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Games returns the league's recent completed games.
func (s *Service) Games(ctx context.Context, league leagues.League) gateway.GamesResult {
	return s.source.FetchGamesForLeague(ctx, league)
}

// TeamSchedule returns the league's recent games involving team, given as a name or abbreviation.
func (s *Service) TeamSchedule(ctx context.Context, league leagues.League, team string) gateway.GamesResult {
	res := s.source.FetchGamesForLeague(ctx, league)
	name := teams.DisplayName(league, team)
	filtered := make([]events.Game, 0, len(res.Records))
	for _, g := range res.Records {
		if g.Involves(name) {
			filtered = append(filtered, g)
		}
	}
	res.Records = filtered
	return res
}

// AllLeagues fetches every supported league concurrently. Results keep leagues.All order.
func (s *Service) AllLeagues(ctx context.Context) []LeagueGames {
	all := leagues.All()
	out := make([]LeagueGames, len(all))
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range all {
		g.Go(func() error {
			out[i] = LeagueGames{League: l, GamesResult: s.source.FetchGamesForLeague(gctx, l)}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
