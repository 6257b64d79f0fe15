package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type gatewayStats struct {
	results      map[string]int
	cacheHits    int
	daysScanned  int
	cooldowns    int
	skippedScans int
}

// Recorder captures lightweight, in-memory metrics about provider calls and gateway outcomes,
// mirrored to OpenTelemetry instruments when telemetry is enabled.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	gateway map[string]*gatewayStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*providerStats),
		gateway: make(map[string]*gatewayStats),
		otel:    otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// RecordGatewayResult tracks one gateway call for a league: where its records came from,
// whether the cache answered it, and how many days were queried upstream.
func (r *Recorder) RecordGatewayResult(league, kind, provenance string, cacheHit bool, daysScanned int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureGatewayLocked(league)
	stats.results[provenance]++
	if cacheHit {
		stats.cacheHits++
	}
	stats.daysScanned += daysScanned
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGatewayResult(league, kind, provenance, cacheHit, daysScanned, duration)
	}
}

// RecordCooldown tracks that a league entered a rate-limit cooldown. skipped reports whether
// the live scan was abandoned because the wait was too long.
func (r *Recorder) RecordCooldown(league string, wait time.Duration, skipped bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureGatewayLocked(league)
	stats.cooldowns++
	if skipped {
		stats.skippedScans++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCooldown(league, wait, skipped)
	}
}

// GatewaySnapshot is a copy of the gateway stats for one league.
type GatewaySnapshot struct {
	Results      map[string]int
	CacheHits    int
	DaysScanned  int
	Cooldowns    int
	SkippedScans int
}

// Gateway returns the gateway stats recorded for a league.
func (r *Recorder) Gateway(league string) GatewaySnapshot {
	if r == nil {
		return GatewaySnapshot{Results: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := GatewaySnapshot{Results: make(map[string]int)}
	stats, ok := r.gateway[league]
	if !ok {
		return snap
	}
	for k, v := range stats.results {
		snap.Results[k] = v
	}
	snap.CacheHits = stats.cacheHits
	snap.DaysScanned = stats.daysScanned
	snap.Cooldowns = stats.cooldowns
	snap.SkippedScans = stats.skippedScans
	return snap
}

func (r *Recorder) ensureGatewayLocked(league string) *gatewayStats {
	stats, ok := r.gateway[league]
	if !ok {
		stats = &gatewayStats{results: make(map[string]int)}
		r.gateway[league] = stats
	}
	return stats
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
