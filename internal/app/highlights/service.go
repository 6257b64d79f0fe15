package highlights

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/gateway"
)

// maxConcurrent bounds how many favorite teams are fetched at once.
const maxConcurrent = 4

// Source defines the contract for fetching highlights.
type Source interface {
	FetchHighlightsForLeague(ctx context.Context, league leagues.League, team string, targetCount int) gateway.HighlightsResult
}

// Favorite identifies a followed team.
type Favorite struct {
	League leagues.League `json:"league"`
	Team   string         `json:"team"`
}

// TeamHighlights pairs a favorite with its highlights.
type TeamHighlights struct {
	Favorite
	gateway.HighlightsResult
}

// Service coordinates highlight queries using a Source.
type Service struct {
	source Source
}

// NewService constructs a Service with the provided Source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Highlights returns up to count highlights for league, optionally for one team.
func (s *Service) Highlights(ctx context.Context, league leagues.League, team string, count int) gateway.HighlightsResult {
	return s.source.FetchHighlightsForLeague(ctx, league, team, count)
}

// ForTeams fetches highlights for each favorite concurrently. Unsupported leagues are skipped.
// Results keep the order of favs.
func (s *Service) ForTeams(ctx context.Context, favs []Favorite, count int) []TeamHighlights {
	supported := make([]Favorite, 0, len(favs))
	for _, f := range favs {
		if _, ok := leagues.Lookup(f.League); ok {
			supported = append(supported, f)
		}
	}

	out := make([]TeamHighlights, len(supported))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)
	for i, f := range supported {
		g.Go(func() error {
			out[i] = TeamHighlights{Favorite: f, HighlightsResult: s.source.FetchHighlightsForLeague(gctx, f.League, f.Team, count)}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
