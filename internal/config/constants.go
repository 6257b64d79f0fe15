package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envAdminToken   = "ADMIN_TOKEN"
	envCORSOrigins  = "CORS_ALLOW_ORIGINS"
	envTimezone     = "DEFAULT_TIMEZONE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"

	envProvider          = "PROVIDER"
	envSportsDBBaseURL   = "SPORTSDB_BASE_URL"
	envSportsDBAPIKey    = "SPORTSDB_API_KEY"
	envRelayURL          = "RELAY_URL"
	envRequestsPerMinute = "PROVIDER_REQUESTS_PER_MINUTE"
	envRetryAttempts     = "PROVIDER_RETRY_ATTEMPTS"

	envScanMaxDays        = "SCAN_MAX_DAYS"
	envScanEmptyStreak    = "SCAN_EMPTY_STREAK"
	envScanDayDelay       = "SCAN_DAY_DELAY"
	envScanRateLimitDelay = "SCAN_RATE_LIMIT_DELAY"
	envRateLimitBackoff   = "RATE_LIMIT_BACKOFF"
	envRateLimitCooldown  = "RATE_LIMIT_COOLDOWN"
	envMaxCooldownWait    = "MAX_COOLDOWN_WAIT"

	envCacheBackend       = "CACHE_BACKEND"
	envCacheGamesTTL      = "CACHE_GAMES_TTL"
	envCacheHighlightsTTL = "CACHE_HIGHLIGHTS_TTL"
	envCacheRetention     = "CACHE_RETENTION"
	envCacheDir           = "CACHE_DIR"
	envRedisAddr          = "REDIS_ADDR"
	envRedisPassword      = "REDIS_PASSWORD"
	envRedisDB            = "REDIS_DB"
	envDatabaseURL        = "DATABASE_URL"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Warm every league well inside the games TTL.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultCORSOrigins  = "*"
	defaultTimezone     = "America/New_York"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"

	defaultProvider        = "fixture"
	defaultSportsDBBaseURL = "https://www.thesportsdb.com/api/v1/json"
	defaultSportsDBAPIKey  = "3"
	// TheSportsDB's free tier allows roughly 30 requests per minute.
	defaultRequestsPerMinute = 30
	defaultRetryAttempts     = 3

	defaultScanMaxDays        = 30
	defaultScanEmptyStreak    = 3
	defaultScanDayDelay       = 300 * Duration(time.Millisecond)
	defaultScanRateLimitDelay = Duration(time.Second)
	defaultRateLimitBackoff   = 2 * Duration(time.Second)
	defaultRateLimitCooldown  = 30 * Duration(time.Second)
	defaultMaxCooldownWait    = 30 * Duration(time.Second)

	defaultCacheBackend       = "memory"
	defaultCacheGamesTTL      = 10 * Duration(time.Minute)
	defaultCacheHighlightsTTL = 30 * Duration(time.Minute)
	defaultCacheRetention     = 7 * 24 * Duration(time.Hour)
	defaultCacheDir           = "data/cache"
	defaultRedisAddr          = "localhost:6379"

	defaultMetricsPort = "9090"
	defaultServiceName = "sports-gateway"
)
