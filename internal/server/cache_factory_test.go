package server

import (
	"context"
	"os"
	"testing"
	"time"

	"sports-gateway/internal/cache"
	"sports-gateway/internal/config"
	"sports-gateway/internal/testutil"
)

func TestBuildCacheBackends(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.CacheConfig
		want string
	}{
		{"default", config.CacheConfig{}, "memory"},
		{"memory", config.CacheConfig{Backend: "memory"}, "memory"},
		{"file", config.CacheConfig{Backend: "file", Dir: t.TempDir()}, "file"},
		{"unknown degrades", config.CacheConfig{Backend: "etcd"}, "memory"},
		{"postgres without url degrades", config.CacheConfig{Backend: "postgres"}, "memory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := testutil.NewBufferLogger()
			cc := buildCache(context.Background(), tt.cfg, logger)
			defer cc.close()
			if cc.backend != tt.want {
				t.Fatalf("expected backend %s, got %s", tt.want, cc.backend)
			}
			if cc.cache == nil {
				t.Fatalf("expected cache")
			}
		})
	}
}

func TestBuildCacheUnreachableRedisDegrades(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	logger, buf := testutil.NewBufferLogger()

	cc := buildCache(ctx, config.CacheConfig{Backend: "redis", RedisAddr: "127.0.0.1:1"}, logger)
	defer cc.close()

	if cc.backend != "memory" {
		t.Fatalf("expected memory fallback, got %s", cc.backend)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected degradation to be logged")
	}
}

func TestBuildCacheRedis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	cc := buildCache(context.Background(), config.CacheConfig{Backend: "redis", RedisAddr: addr, Retention: time.Hour}, nil)
	defer cc.close()
	if cc.backend != "redis" {
		t.Fatalf("expected redis backend, got %s", cc.backend)
	}
}

func TestBuildCachePostgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	cc := buildCache(context.Background(), config.CacheConfig{Backend: "postgres", DatabaseURL: url}, nil)
	defer cc.close()
	if cc.backend != "postgres" {
		t.Fatalf("expected postgres backend, got %s", cc.backend)
	}
}

func TestCachePolicyFromConfig(t *testing.T) {
	p := cachePolicy(config.CacheConfig{GamesTTL: time.Minute, HighlightsTTL: 2 * time.Minute, Retention: time.Hour})
	if p.TTL(cache.KindGames) != time.Minute || p.TTL(cache.KindHighlights) != 2*time.Minute || p.Retention != time.Hour {
		t.Fatalf("unexpected policy %+v", p)
	}
}
