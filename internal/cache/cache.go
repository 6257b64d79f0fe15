// Package cache stores gateway results keyed by kind, league and team filter.
//
// Entries have two horizons: a per-kind TTL after which they are no longer fresh, and a longer
// retention period during which they may still be served as stale data. Entries past retention
// are evicted lazily when read.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"sports-gateway/internal/domain/leagues"
)

// ErrMiss is returned when no usable entry exists for a key.
var ErrMiss = errors.New("cache miss")

// Kind distinguishes the record families stored in the cache.
type Kind string

const (
	KindGames      Kind = "games"
	KindHighlights Kind = "highlights"
)

// Kinds lists every cached kind.
func Kinds() []Kind {
	return []Kind{KindGames, KindHighlights}
}

const allTeams = "all"

// Key identifies one cached result.
type Key struct {
	Kind   Kind
	League leagues.League
	Team   string
}

// String renders the key as kind:league:team, with "all" for an empty team filter.
func (k Key) String() string {
	team := strings.ToLower(strings.TrimSpace(k.Team))
	if team == "" {
		team = allTeams
	}
	return fmt.Sprintf("%s:%s:%s", k.Kind, k.League, team)
}

// LeaguePrefix returns the key prefix shared by every entry of kind for league.
func LeaguePrefix(kind Kind, league leagues.League) string {
	return fmt.Sprintf("%s:%s:", kind, league)
}

// Entry is a cached payload with the instant it was fetched.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Store is a key/value backend for entries.
type Store interface {
	// Get returns ErrMiss when the key is absent.
	Get(ctx context.Context, key string) (Entry, error)
	Set(ctx context.Context, key string, entry Entry) error
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every key starting with prefix and reports how many were removed.
	DeletePrefix(ctx context.Context, prefix string) (int, error)
}

// Policy configures freshness and retention.
type Policy struct {
	GamesTTL      time.Duration
	HighlightsTTL time.Duration
	Retention     time.Duration
}

// DefaultPolicy returns the default horizons.
func DefaultPolicy() Policy {
	return Policy{
		GamesTTL:      10 * time.Minute,
		HighlightsTTL: 30 * time.Minute,
		Retention:     7 * 24 * time.Hour,
	}
}

func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.GamesTTL <= 0 {
		p.GamesTTL = d.GamesTTL
	}
	if p.HighlightsTTL <= 0 {
		p.HighlightsTTL = d.HighlightsTTL
	}
	if p.Retention <= 0 {
		p.Retention = d.Retention
	}
	if p.Retention < p.GamesTTL {
		p.Retention = p.GamesTTL
	}
	if p.Retention < p.HighlightsTTL {
		p.Retention = p.HighlightsTTL
	}
	return p
}

// TTL returns the freshness window for kind.
func (p Policy) TTL(kind Kind) time.Duration {
	if kind == KindHighlights {
		return p.HighlightsTTL
	}
	return p.GamesTTL
}

// Lookup is the result of reading a key through the cache.
type Lookup struct {
	Entry Entry
	Fresh bool
	Age   time.Duration
}

// Cache applies a Policy on top of a Store.
type Cache struct {
	store  Store
	policy Policy
	now    func() time.Time
}

// New wraps store with policy. A nil now uses time.Now.
func New(store Store, policy Policy, now func() time.Time) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{store: store, policy: policy.withDefaults(), now: now}
}

// Policy exposes the effective policy.
func (c *Cache) Policy() Policy {
	return c.policy
}

// Get reads key. Entries past retention are deleted and reported as ErrMiss.
func (c *Cache) Get(ctx context.Context, key Key) (Lookup, error) {
	entry, err := c.store.Get(ctx, key.String())
	if err != nil {
		return Lookup{}, err
	}
	age := c.now().Sub(entry.FetchedAt)
	if age > c.policy.Retention {
		if delErr := c.store.Delete(ctx, key.String()); delErr != nil {
			return Lookup{}, fmt.Errorf("evict %s: %w", key, delErr)
		}
		return Lookup{}, ErrMiss
	}
	return Lookup{Entry: entry, Fresh: age <= c.policy.TTL(key.Kind), Age: age}, nil
}

// Put stores records under key stamped with the current time.
func (c *Cache) Put(ctx context.Context, key Key, records any) (time.Time, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return time.Time{}, fmt.Errorf("marshal %s: %w", key, err)
	}
	fetchedAt := c.now().UTC()
	if err := c.store.Set(ctx, key.String(), Entry{Data: data, FetchedAt: fetchedAt}); err != nil {
		return time.Time{}, err
	}
	return fetchedAt, nil
}

// InvalidateLeague drops every cached entry for league.
func (c *Cache) InvalidateLeague(ctx context.Context, league leagues.League) (int, error) {
	total := 0
	for _, kind := range Kinds() {
		n, err := c.store.DeletePrefix(ctx, LeaguePrefix(kind, league))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
