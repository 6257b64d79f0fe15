package server

import (
	"log/slog"

	"sports-gateway/internal/config"
	"sports-gateway/internal/metrics"
	"sports-gateway/internal/providers"
	"sports-gateway/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap paces base with the configured quota, then retries transient failures. The static
// dataset has no quota and is only retried.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	inner := base
	if _, static := base.(*fixture.Provider); !static {
		inner = providers.NewRateLimitedProvider(base, cfg.Provider.RequestsPerMinute, 0, f.logger)
	}
	return providers.NewRetryingProvider(inner, f.logger, f.metrics, normalizeProviderName(cfg.Provider.Name, base), cfg.Provider.RetryAttempts, 0)
}
