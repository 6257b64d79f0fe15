package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"sports-gateway/internal/cache"
	"sports-gateway/internal/config"
	"sports-gateway/internal/logging"
)

// cacheComponents pairs the policy-wrapped cache with a closer for its backend.
type cacheComponents struct {
	cache   *cache.Cache
	backend string
	close   func()
}

func cachePolicy(cfg config.CacheConfig) cache.Policy {
	return cache.Policy{
		GamesTTL:      cfg.GamesTTL,
		HighlightsTTL: cfg.HighlightsTTL,
		Retention:     cfg.Retention,
	}
}

// buildCache opens the configured backend. A backend that cannot be opened degrades to memory.
func buildCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) cacheComponents {
	store, closer, err := openStore(ctx, cfg)
	backend := strings.ToLower(cfg.Backend)
	if err != nil {
		logging.Warn(logger, "cache backend unavailable, using memory",
			slog.String("backend", cfg.Backend),
			slog.Any("err", err),
		)
		store, closer, backend = cache.NewMemoryStore(), nil, "memory"
	}
	if closer == nil {
		closer = func() {}
	}
	if backend == "" {
		backend = "memory"
	}
	return cacheComponents{
		cache:   cache.New(store, cachePolicy(cfg), nil),
		backend: backend,
		close:   closer,
	}
}

func openStore(ctx context.Context, cfg config.CacheConfig) (cache.Store, func(), error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "memory":
		return cache.NewMemoryStore(), nil, nil
	case "file":
		fs, err := cache.NewFileStore(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return fs, nil, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return cache.NewRedisStore(client, cfg.Retention), func() { _ = client.Close() }, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, nil, errors.New("postgres cache requires DATABASE_URL")
		}
		ps, err := cache.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return ps, ps.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
