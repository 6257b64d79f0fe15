package gateway

import (
	"context"
	"errors"
	"log/slog"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/logging"
	"sports-gateway/internal/providers"
	"sports-gateway/internal/timeutil"
)

type stopReason string

const (
	stopDayCap       stopReason = "day_cap"
	stopTarget       stopReason = "target"
	stopEmptyStreak  stopReason = "empty_streak"
	stopTransport    stopReason = "transport"
	stopUnauthorized stopReason = "unauthorized"
	stopCooldown     stopReason = "cooldown"
	stopCancelled    stopReason = "cancelled"
)

type scanRequest struct {
	league leagues.League
	keep   filterFunc
	target int
}

type scanOutcome struct {
	records     []events.Highlight
	days        int
	rateLimited bool
	stop        stopReason
}

// goodEnough reports whether the scan may stop with count matching records. After a rate limit
// in the same scan, one short of target or 80% of it is accepted.
func goodEnough(count, target int, rateLimited bool) bool {
	if target <= 0 {
		return false
	}
	if count >= target {
		return true
	}
	if !rateLimited || count == 0 {
		return false
	}
	return count >= target-1 || count*5 >= target*4
}

// scan queries the provider one day at a time, newest first. Queries are strictly sequential.
func (g *Gateway) scan(ctx context.Context, req scanRequest) scanOutcome {
	logger := logging.ForLeague(logging.FromContext(ctx, g.logger), req.league.String())
	out := scanOutcome{stop: stopDayCap}
	today := g.clock.Now()
	emptyStreak := 0
	afterRateLimit := false

days:
	for i := 0; i < g.cfg.MaxDays; i++ {
		if i > 0 {
			delay := g.cfg.DayDelay
			if afterRateLimit {
				delay = g.cfg.PostRateLimitDelay
			}
			if err := g.clock.Sleep(ctx, delay); err != nil {
				out.stop = stopCancelled
				break
			}
		}
		if !g.awaitCooldown(ctx, req.league) {
			out.stop = stopCooldown
			if ctx.Err() != nil {
				out.stop = stopCancelled
			}
			break
		}

		date := timeutil.DaysBack(today, i, g.loc)
		evts, err := g.provider.FetchEventsByDay(ctx, req.league, date)
		out.days++
		afterRateLimit = false

		if err == nil {
			logging.Debug(logger, "day scanned", logging.FieldDate, date, logging.FieldCount, len(evts))
			if len(evts) == 0 {
				emptyStreak++
				if emptyStreak >= g.cfg.EmptyStreakLimit {
					out.stop = stopEmptyStreak
					break
				}
				continue
			}
			emptyStreak = 0
			out.records = append(out.records, evts...)
			if goodEnough(countMatching(out.records, req.keep), req.target, out.rateLimited) {
				out.stop = stopTarget
				break
			}
			continue
		}

		if ctx.Err() != nil {
			out.stop = stopCancelled
			break
		}

		if rlErr, ok := providers.AsRateLimitError(err); ok {
			out.rateLimited = true
			afterRateLimit = true
			until := g.cooldowns.Mark(req.league, rlErr.RetryAfter)
			g.metrics.RecordCooldown(req.league.String(), until.Sub(g.clock.Now()), false)
			logging.Warn(logger, "provider rate limited",
				slog.String(logging.FieldDate, date),
				slog.Time("cooldown_until", until),
			)
			if goodEnough(countMatching(out.records, req.keep), req.target, true) {
				out.stop = stopTarget
				break
			}
			if err := g.clock.Sleep(ctx, g.cfg.RateLimitBackoff); err != nil {
				out.stop = stopCancelled
				break
			}
			continue
		}

		switch {
		case providers.IsTransportError(err):
			out.stop = stopTransport
			if goodEnough(countMatching(out.records, req.keep), req.target, out.rateLimited) {
				out.stop = stopTarget
			}
			logging.Warn(logger, "provider unreachable",
				logging.FieldDate, date,
				"error", err,
			)
			break days
		case errors.Is(err, providers.ErrUnauthorized):
			out.stop = stopUnauthorized
			logging.Warn(logger, "provider rejected credentials", "error", err)
			break days
		default:
			logging.Warn(logger, "provider day query failed",
				logging.FieldDate, date,
				"error", err,
			)
		}
	}

	return out
}

// awaitCooldown waits out an active cooldown for league. It returns false when the wait would
// exceed MaxCooldownWait or ctx ends first.
func (g *Gateway) awaitCooldown(ctx context.Context, league leagues.League) bool {
	remaining := g.cooldowns.Remaining(league)
	if remaining <= 0 {
		return true
	}
	logger := logging.FromContext(ctx, g.logger)
	if remaining > g.cfg.MaxCooldownWait {
		g.metrics.RecordCooldown(league.String(), remaining, true)
		logging.Warn(logger, "league cooling down, skipping live fetch",
			logging.FieldLeague, league.String(),
			logging.FieldDurationMS, remaining.Milliseconds(),
		)
		return false
	}
	logging.Info(logger, "waiting for league cooldown",
		logging.FieldLeague, league.String(),
		logging.FieldDurationMS, remaining.Milliseconds(),
	)
	return g.clock.Sleep(ctx, remaining) == nil
}
