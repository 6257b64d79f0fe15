package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	AdminToken   string
	CORSOrigins  []string
	Timezone     string
	Logging      LoggingConfig
	Provider     ProviderConfig
	Gateway      GatewayConfig
	Cache        CacheConfig
	Metrics      MetricsConfig
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		AdminToken:   envOrDefault(envAdminToken, ""),
		CORSOrigins:  listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Timezone:     envOrDefault(envTimezone, defaultTimezone),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Provider: loadProvider(),
		Gateway:  loadGateway(),
		Cache:    loadCache(),
		Metrics:  loadMetrics(),
	}
}
