package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"sports-gateway/internal/cache"
	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/logging"
)

// cacheTimeout bounds cache I/O that runs after the caller's context has ended.
const cacheTimeout = 2 * time.Second

type fetchRequest struct {
	league leagues.League
	kind   cache.Kind
	team   string
	keep   filterFunc
	target int
	limit  int
}

// highlightSet is the cached form of a highlight scan. Target is the count the scan ran for: a
// later request for at most Target records can reuse the set even when it holds fewer.
type highlightSet struct {
	Target  int                `json:"target"`
	Records []events.Highlight `json:"records"`
}

type fetchResult struct {
	records    []events.Highlight
	provenance Provenance
	fetchedAt  time.Time
	cacheHit   bool
	days       int
}

// FetchGamesForLeague returns up to the league's cap of the most recent completed games.
// Unsupported leagues yield an empty fallback result.
func (g *Gateway) FetchGamesForLeague(ctx context.Context, league leagues.League) GamesResult {
	limit := league.GameCap()
	res := g.fetch(ctx, fetchRequest{
		league: league,
		kind:   cache.KindGames,
		keep:   completedOnly,
		target: limit,
		limit:  limit,
	})
	return GamesResult{
		Records:    gamesOf(res.records),
		Provenance: res.provenance,
		FetchedAt:  res.fetchedAt,
		CacheHit:   res.cacheHit,
	}
}

// FetchHighlightsForLeague returns up to targetCount highlights carrying a video, optionally
// limited to events involving team (name or abbreviation). targetCount <= 0 means the default.
func (g *Gateway) FetchHighlightsForLeague(ctx context.Context, league leagues.League, team string, targetCount int) HighlightsResult {
	if targetCount <= 0 {
		targetCount = DefaultHighlightTarget
	}
	limit := targetCount
	if c := league.GameCap(); c > 0 && c < limit {
		limit = c
	}
	team = strings.TrimSpace(team)
	keyTeam := team
	if t, ok := teams.Resolve(league, team); ok {
		keyTeam = t.Abbreviation
	}
	res := g.fetch(ctx, fetchRequest{
		league: league,
		kind:   cache.KindHighlights,
		team:   keyTeam,
		keep:   allOf(withVideo, teamFilter(league, team)),
		target: limit,
		limit:  limit,
	})
	return HighlightsResult{
		Records:    res.records,
		Provenance: res.provenance,
		FetchedAt:  res.fetchedAt,
		CacheHit:   res.cacheHit,
	}
}

// FetchGamesByLeague accepts a raw league identifier and returns only the records.
func (g *Gateway) FetchGamesByLeague(ctx context.Context, league string) []events.Game {
	l, ok := leagues.Parse(league)
	if !ok {
		return []events.Game{}
	}
	return g.FetchGamesForLeague(ctx, l).Records
}

// FetchHighlights accepts a raw league identifier and returns only the records.
func (g *Gateway) FetchHighlights(ctx context.Context, league, team string, targetCount int) []events.Highlight {
	l, ok := leagues.Parse(league)
	if !ok {
		return []events.Highlight{}
	}
	return g.FetchHighlightsForLeague(ctx, l, team, targetCount).Records
}

func (g *Gateway) fetch(ctx context.Context, req fetchRequest) fetchResult {
	start := g.clock.Now()
	key := cache.Key{Kind: req.kind, League: req.league, Team: req.team}
	logger := logging.FromContext(ctx, g.logger)

	if _, ok := leagues.Lookup(req.league); !ok {
		logging.Warn(logger, "unsupported league", logging.FieldLeague, req.league.String())
		return fetchResult{records: []events.Highlight{}, provenance: ProvenanceFallback, fetchedAt: start}
	}

	res := g.resolve(ctx, req, key)

	g.metrics.RecordGatewayResult(req.league.String(), string(req.kind), string(res.provenance), res.cacheHit, res.days, g.clock.Now().Sub(start))
	logging.Info(logger, "gateway result",
		slog.String(logging.FieldLeague, req.league.String()),
		slog.String(logging.FieldCacheKey, key.String()),
		slog.String(logging.FieldProvenance, string(res.provenance)),
		slog.Int(logging.FieldCount, len(res.records)),
		slog.Int("days", res.days),
		slog.Int64(logging.FieldDurationMS, g.clock.Now().Sub(start).Milliseconds()),
	)
	return res
}

func (g *Gateway) resolve(ctx context.Context, req fetchRequest, key cache.Key) fetchResult {
	logger := logging.FromContext(ctx, g.logger)

	lookup, err := g.cache.Get(ctx, key)
	switch {
	case err == nil && lookup.Fresh:
		if recs, target, ok := g.decode(logger, key, lookup.Entry); ok && covers(req, recs, target) {
			recs = postProcess(recs, req.keep, req.limit)
			return fetchResult{records: recs, provenance: ProvenanceFresh, fetchedAt: lookup.Entry.FetchedAt, cacheHit: true}
		}
	case err != nil && !errors.Is(err, cache.ErrMiss):
		logging.Warn(logger, "cache read failed", logging.FieldCacheKey, key.String(), "error", err)
	}

	outcome := g.scan(ctx, scanRequest{league: req.league, keep: req.keep, target: req.target})
	recs := postProcess(outcome.records, req.keep, req.limit)
	logging.Info(logger, "day scan finished",
		logging.FieldLeague, req.league.String(),
		"stop", string(outcome.stop),
		"days", outcome.days,
		"rate_limited", outcome.rateLimited,
		logging.FieldCount, len(recs),
	)
	if len(recs) > 0 {
		fetchedAt := g.store(ctx, logger, req, key, recs)
		return fetchResult{records: recs, provenance: ProvenanceFresh, fetchedAt: fetchedAt, days: outcome.days}
	}

	res := g.degraded(ctx, req, key)
	res.days = outcome.days
	return res
}

// degraded serves a stale cache entry when one is retained, else the static dataset.
func (g *Gateway) degraded(ctx context.Context, req fetchRequest, key cache.Key) fetchResult {
	logger := logging.FromContext(ctx, g.logger)
	dctx, cancel := detached(ctx)
	defer cancel()

	lookup, err := g.cache.Get(dctx, key)
	if err == nil {
		recs, _, ok := g.decode(logger, key, lookup.Entry)
		recs = postProcess(recs, req.keep, req.limit)
		if ok && len(recs) > 0 {
			logging.Warn(logger, "serving stale cache entry",
				logging.FieldCacheKey, key.String(),
				"age", lookup.Age.String(),
			)
			return fetchResult{records: recs, provenance: ProvenanceStale, fetchedAt: lookup.Entry.FetchedAt, cacheHit: true}
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		logging.Warn(logger, "cache read failed", logging.FieldCacheKey, key.String(), "error", err)
	}

	var static []events.Highlight
	if g.fallback != nil {
		if req.kind == cache.KindHighlights {
			static = g.fallback.Highlights(req.league, req.team)
		} else {
			static = g.fallback.Events(req.league)
		}
	}
	recs := postProcess(static, req.keep, req.limit)
	logging.Warn(logger, "serving static fallback",
		logging.FieldCacheKey, key.String(),
		logging.FieldCount, len(recs),
	)
	return fetchResult{records: recs, provenance: ProvenanceFallback, fetchedAt: g.clock.Now().UTC()}
}

// covers reports whether a fresh cached set can answer req. Games always can; a highlight set
// must hold the requested count or come from a scan for at least that many.
func covers(req fetchRequest, recs []events.Highlight, target int) bool {
	if req.kind != cache.KindHighlights {
		return true
	}
	return target >= req.target || countMatching(recs, req.keep) >= req.target
}

// store writes records under key. Games are stored without media fields.
func (g *Gateway) store(ctx context.Context, logger *slog.Logger, req fetchRequest, key cache.Key, recs []events.Highlight) time.Time {
	dctx, cancel := detached(ctx)
	defer cancel()

	var payload any = gamesOf(recs)
	if req.kind == cache.KindHighlights {
		payload = highlightSet{Target: req.target, Records: recs}
	}
	fetchedAt, err := g.cache.Put(dctx, key, payload)
	if err != nil {
		logging.Warn(logger, "cache write failed", logging.FieldCacheKey, key.String(), "error", err)
		return g.clock.Now().UTC()
	}
	return fetchedAt
}

// decode reads a cached payload and the target it was scanned for. Games and bare record lists
// decode into highlights with empty media fields and a zero target.
func (g *Gateway) decode(logger *slog.Logger, key cache.Key, entry cache.Entry) ([]events.Highlight, int, bool) {
	var set highlightSet
	var err error
	if data := bytes.TrimSpace(entry.Data); len(data) > 0 && data[0] == '{' {
		err = json.Unmarshal(data, &set)
	} else {
		err = json.Unmarshal(data, &set.Records)
	}
	if err != nil {
		logging.Warn(logger, "cache entry unreadable", logging.FieldCacheKey, key.String(), "error", err)
		return nil, 0, false
	}
	return set.Records, set.Target, true
}

// detached keeps cache I/O alive after the caller cancels, bounded by cacheTimeout.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), cacheTimeout)
}
