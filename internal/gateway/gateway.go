// Package gateway fetches recent games and highlights per league.
//
// A call is answered from a fresh cache entry when one exists. Otherwise the provider is queried
// day by day backwards from today until enough records are collected, a run of empty days is seen,
// or the day cap is reached. Rate-limit responses put the league into a cooldown that later
// requests wait out. When the scan yields nothing the gateway serves a stale cache entry, then a
// static dataset. Callers always get a result, never an error; the result's Provenance says which
// source answered.
package gateway

import (
	"context"
	"log/slog"
	"time"

	"sports-gateway/internal/cache"
	"sports-gateway/internal/cooldown"
	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/metrics"
	"sports-gateway/internal/providers"
	"sports-gateway/internal/timeutil"
)

// Provenance tells callers which source produced a result.
type Provenance string

const (
	ProvenanceFresh    Provenance = "fresh"
	ProvenanceStale    Provenance = "stale"
	ProvenanceFallback Provenance = "fallback"
)

// DefaultHighlightTarget is the number of highlights requested when the caller passes none.
const DefaultHighlightTarget = 5

// GamesResult carries completed games, most recent first.
type GamesResult struct {
	Records    []events.Game `json:"records"`
	Provenance Provenance    `json:"provenance"`
	FetchedAt  time.Time     `json:"fetchedAt"`
	CacheHit   bool          `json:"cacheHit"`
}

// HighlightsResult carries highlights with video, most recent first.
type HighlightsResult struct {
	Records    []events.Highlight `json:"records"`
	Provenance Provenance         `json:"provenance"`
	FetchedAt  time.Time          `json:"fetchedAt"`
	CacheHit   bool               `json:"cacheHit"`
}

// Config tunes the day-scan. Zero values fall back to defaults.
type Config struct {
	MaxDays            int
	EmptyStreakLimit   int
	DayDelay           time.Duration
	PostRateLimitDelay time.Duration
	RateLimitBackoff   time.Duration
	Cooldown           time.Duration
	// MaxCooldownWait bounds how long a call waits out a cooldown before giving up on live data.
	MaxCooldownWait time.Duration
	Timezone        string
}

// DefaultConfig returns the default scan settings.
func DefaultConfig() Config {
	return Config{
		MaxDays:            30,
		EmptyStreakLimit:   3,
		DayDelay:           300 * time.Millisecond,
		PostRateLimitDelay: time.Second,
		RateLimitBackoff:   2 * time.Second,
		Cooldown:           cooldown.DefaultCooldown,
		MaxCooldownWait:    30 * time.Second,
		Timezone:           "America/New_York",
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxDays <= 0 {
		c.MaxDays = d.MaxDays
	}
	if c.EmptyStreakLimit <= 0 {
		c.EmptyStreakLimit = d.EmptyStreakLimit
	}
	if c.DayDelay <= 0 {
		c.DayDelay = d.DayDelay
	}
	if c.PostRateLimitDelay <= 0 {
		c.PostRateLimitDelay = d.PostRateLimitDelay
	}
	if c.RateLimitBackoff <= 0 {
		c.RateLimitBackoff = d.RateLimitBackoff
	}
	if c.Cooldown <= 0 {
		c.Cooldown = d.Cooldown
	}
	if c.MaxCooldownWait <= 0 {
		c.MaxCooldownWait = d.MaxCooldownWait
	}
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	return c
}

// Clock abstracts time so scans can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FallbackSource supplies the static dataset served when nothing else is available.
type FallbackSource interface {
	Events(league leagues.League) []events.Highlight
	Highlights(league leagues.League, team string) []events.Highlight
}

// Options wires the gateway's collaborators. Nil fields get in-memory defaults.
type Options struct {
	Config    Config
	Cache     *cache.Cache
	Cooldowns *cooldown.Tracker
	Fallback  FallbackSource
	Clock     Clock
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

// Gateway is safe for concurrent use. Calls for the same key are not coalesced.
type Gateway struct {
	provider  providers.EventProvider
	cache     *cache.Cache
	cooldowns *cooldown.Tracker
	fallback  FallbackSource
	clock     Clock
	logger    *slog.Logger
	metrics   *metrics.Recorder
	cfg       Config
	loc       *time.Location
}

// New constructs a Gateway around provider.
func New(provider providers.EventProvider, opts Options) *Gateway {
	cfg := opts.Config.withDefaults()
	clock := opts.Clock
	if clock == nil {
		clock = realClock{}
	}
	c := opts.Cache
	if c == nil {
		c = cache.New(cache.NewMemoryStore(), cache.DefaultPolicy(), clock.Now)
	}
	tracker := opts.Cooldowns
	if tracker == nil {
		tracker = cooldown.NewTracker(cfg.Cooldown, clock.Now)
	}
	return &Gateway{
		provider:  provider,
		cache:     c,
		cooldowns: tracker,
		fallback:  opts.Fallback,
		clock:     clock,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		cfg:       cfg,
		loc:       timeutil.ResolveLocation(cfg.Timezone),
	}
}

// Invalidate drops every cached entry for league.
func (g *Gateway) Invalidate(ctx context.Context, league leagues.League) (int, error) {
	return g.cache.InvalidateLeague(ctx, league)
}

// Cooldowns exposes the tracker shared by all calls.
func (g *Gateway) Cooldowns() *cooldown.Tracker {
	return g.cooldowns
}
