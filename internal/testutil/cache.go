package testutil

import (
	"context"
	"testing"
	"time"

	"sports-gateway/internal/cache"
)

// NewMemoryCache returns a cache over an in-memory store using the default policy.
func NewMemoryCache(now func() time.Time) *cache.Cache {
	return cache.New(cache.NewMemoryStore(), cache.DefaultPolicy(), now)
}

// SeedCache writes records under key, failing the test on error.
func SeedCache(t *testing.T, c *cache.Cache, key cache.Key, records any) time.Time {
	t.Helper()
	fetchedAt, err := c.Put(context.Background(), key, records)
	if err != nil {
		t.Fatalf("failed to seed cache %s: %v", key, err)
	}
	return fetchedAt
}
