package server

import (
	"log/slog"
	"strings"

	"sports-gateway/internal/config"
	"sports-gateway/internal/logging"
	"sports-gateway/internal/providers"
	"sports-gateway/internal/providers/fixture"
	"sports-gateway/internal/providers/thesportsdb"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(cfg.Provider.Name) {
	case "fixture", "":
		return fixture.New(cfg.Timezone)
	case "thesportsdb":
		return thesportsdb.NewClient(thesportsdb.Config{
			BaseURL:  cfg.Provider.BaseURL,
			APIKey:   cfg.Provider.APIKey,
			RelayURL: cfg.Provider.RelayURL,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider.Name))
		return fixture.New(cfg.Timezone)
	}
}
