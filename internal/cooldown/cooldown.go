// Package cooldown tracks per-league windows during which no provider request may start
// after the provider signalled a rate limit.
package cooldown

import (
	"sync"
	"time"

	"sports-gateway/internal/domain/leagues"
)

// DefaultCooldown is the minimum quiet period after a rate-limit response.
const DefaultCooldown = 30 * time.Second

// Tracker records cooldown deadlines per league. Safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	until    map[leagues.League]time.Time
	cooldown time.Duration
	now      func() time.Time
}

// NewTracker constructs a tracker. A nil now uses time.Now.
func NewTracker(cooldown time.Duration, now func() time.Time) *Tracker {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		until:    make(map[leagues.League]time.Time),
		cooldown: cooldown,
		now:      now,
	}
}

// Mark starts a cooldown for league lasting max(cooldown, retryAfter). An existing later
// deadline is kept.
func (t *Tracker) Mark(league leagues.League, retryAfter time.Duration) time.Time {
	wait := t.cooldown
	if retryAfter > wait {
		wait = retryAfter
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	until := t.now().Add(wait)
	if existing, ok := t.until[league]; ok && existing.After(until) {
		return existing
	}
	t.until[league] = until
	return until
}

// Remaining returns how long league stays in cooldown, or zero.
func (t *Tracker) Remaining(league leagues.League) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	until, ok := t.until[league]
	if !ok {
		return 0
	}
	left := until.Sub(t.now())
	if left <= 0 {
		delete(t.until, league)
		return 0
	}
	return left
}

// Active reports whether league is in cooldown.
func (t *Tracker) Active(league leagues.League) bool {
	return t.Remaining(league) > 0
}

// Clear ends any cooldown for league.
func (t *Tracker) Clear(league leagues.League) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.until, league)
}
