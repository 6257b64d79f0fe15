package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
)

const (
	defaultRequestsPerMinute = 30
	defaultBurst             = 5
)

// rateLimitedProvider paces outbound calls with a token bucket so a burst of scans cannot exceed
// the upstream quota.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that allows requestsPerMinute calls with the given burst.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next DataProvider, requestsPerMinute, burst int, logger *slog.Logger) DataProvider {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	every := time.Minute / time.Duration(requestsPerMinute)
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(every), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"), "err", err)
		}
		return fmt.Errorf("provider rate limit wait: %w", err)
	}
	return nil
}

func (p *rateLimitedProvider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchEventsByDay(ctx, league, date)
}

func (p *rateLimitedProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.SearchTeams(ctx, name)
}

func (p *rateLimitedProvider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return teams.Team{}, err
	}
	return p.next.LookupTeam(ctx, id)
}
