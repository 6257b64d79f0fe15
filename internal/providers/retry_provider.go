package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/logging"
	"sports-gateway/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with retry/backoff for transient upstream failures and
// records attempt metrics. Rate limits and transport failures pass straight through.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/baseDelay are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, baseDelay time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if baseDelay <= 0 {
		baseDelay = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = baseDelay
			b.MaxInterval = 10 * baseDelay
			b.MaxElapsedTime = 0
			b.Reset()
			return b
		},
	}
}

func (r *retryingProvider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	var out []events.Highlight
	err := r.do(ctx, "fetch events", func() error {
		evts, err := r.inner.FetchEventsByDay(ctx, league, date)
		out = evts
		return err
	}, slog.String(logging.FieldLeague, league.String()), slog.String(logging.FieldDate, date))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *retryingProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	var out []teams.Team
	err := r.do(ctx, "search teams", func() error {
		found, err := r.inner.SearchTeams(ctx, name)
		out = found
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *retryingProvider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	var out teams.Team
	err := r.do(ctx, "lookup team", func() error {
		found, err := r.inner.LookupTeam(ctx, id)
		out = found
		return err
	})
	return out, err
}

func (r *retryingProvider) do(ctx context.Context, op string, call func() error, attrs ...any) error {
	if r.inner == nil {
		return ErrProviderUnavailable
	}
	attempt := 0
	operation := func() error {
		attempt++
		start := time.Now()
		err := call()
		r.record(time.Since(start), err)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		args := append([]any{
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"err", err,
		}, attrs...)
		logWithProvider(ctx, logging.FromContext(ctx, r.logger), slog.LevelWarn, r.providerName, "provider "+op+" retry", args...)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	err := backoff.RetryNotify(operation, policy, notify)
	if err != nil && IsRetryable(err) {
		logWithProvider(ctx, logging.FromContext(ctx, r.logger), slog.LevelWarn, r.providerName, "provider "+op+" failed",
			append([]any{"attempts", attempt, "err", err}, attrs...)...)
	}
	return err
}

func (r *retryingProvider) record(duration time.Duration, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordProviderAttempt(r.providerName, duration, err)
	if rlErr, ok := AsRateLimitError(err); ok {
		r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
	}
}
