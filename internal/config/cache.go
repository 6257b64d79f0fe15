package config

// CacheConfig selects the cache backend and its freshness horizons.
type CacheConfig struct {
	// Backend is one of memory, file, redis, postgres.
	Backend       string
	GamesTTL      Duration
	HighlightsTTL Duration
	Retention     Duration
	Dir           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:       envOrDefault(envCacheBackend, defaultCacheBackend),
		GamesTTL:      durationEnvOrDefault(envCacheGamesTTL, defaultCacheGamesTTL),
		HighlightsTTL: durationEnvOrDefault(envCacheHighlightsTTL, defaultCacheHighlightsTTL),
		Retention:     durationEnvOrDefault(envCacheRetention, defaultCacheRetention),
		Dir:           envOrDefault(envCacheDir, defaultCacheDir),
		RedisAddr:     envOrDefault(envRedisAddr, defaultRedisAddr),
		RedisPassword: envOrDefault(envRedisPassword, ""),
		RedisDB:       intEnvOrDefault(envRedisDB, 0),
		DatabaseURL:   envOrDefault(envDatabaseURL, ""),
	}
}
