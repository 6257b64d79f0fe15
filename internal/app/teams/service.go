package teams

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/logging"
	"sports-gateway/internal/providers"
)

// Service coordinates team operations using the static rosters and a TeamProvider.
type Service struct {
	provider providers.TeamProvider
	logger   *slog.Logger
}

// NewService constructs a Service with the provided TeamProvider. A nil provider limits the
// service to the static rosters.
func NewService(provider providers.TeamProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Roster returns the static roster for league.
func (s *Service) Roster(league leagues.League) []teams.Team {
	return teams.Roster(league)
}

// Resolve finds a roster team by name or abbreviation.
func (s *Service) Resolve(league leagues.League, nameOrAbbr string) (teams.Team, bool) {
	return teams.Resolve(league, nameOrAbbr)
}

// Search asks the provider for teams matching query. When the provider fails or finds nothing,
// the static rosters are searched instead.
func (s *Service) Search(ctx context.Context, query string) ([]teams.Team, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []teams.Team{}, nil
	}
	var upstreamErr error
	if s.provider != nil {
		found, err := s.provider.SearchTeams(ctx, query)
		if err == nil && len(found) > 0 {
			return found, nil
		}
		if err != nil {
			upstreamErr = err
			logging.Warn(logging.FromContext(ctx, s.logger), "team search failed, using rosters",
				logging.FieldTeam, query,
				"error", err,
			)
		}
	}

	local := searchRosters(query)
	if len(local) == 0 && upstreamErr != nil {
		return nil, upstreamErr
	}
	return local, nil
}

// Lookup returns a team by roster id or provider id.
func (s *Service) Lookup(ctx context.Context, id string) (teams.Team, error) {
	for _, l := range leagues.All() {
		for _, t := range teams.Roster(l) {
			if strings.EqualFold(t.ID, id) {
				return t, nil
			}
		}
	}
	if s.provider == nil {
		return teams.Team{}, providers.ErrTeamNotFound
	}
	t, err := s.provider.LookupTeam(ctx, id)
	if err != nil && !errors.Is(err, providers.ErrTeamNotFound) {
		logging.Warn(logging.FromContext(ctx, s.logger), "team lookup failed", logging.FieldTeam, id, "error", err)
	}
	return t, err
}

func searchRosters(query string) []teams.Team {
	q := strings.ToLower(query)
	out := []teams.Team{}
	for _, l := range leagues.All() {
		for _, t := range teams.Roster(l) {
			if strings.EqualFold(t.Abbreviation, query) ||
				strings.Contains(strings.ToLower(t.FullName), q) {
				out = append(out, t)
			}
		}
	}
	return out
}
