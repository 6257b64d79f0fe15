package gateway

import (
	"sort"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
)

type filterFunc func(events.Highlight) bool

func completedOnly(h events.Highlight) bool { return h.Completed() }

func withVideo(h events.Highlight) bool { return h.HasVideo() }

// teamFilter keeps events where either side matches team. Roster abbreviations and nicknames
// resolve to the full name first.
func teamFilter(league leagues.League, team string) filterFunc {
	if team == "" {
		return nil
	}
	name := teams.DisplayName(league, team)
	return func(h events.Highlight) bool {
		return h.Involves(name)
	}
}

func allOf(filters ...filterFunc) filterFunc {
	return func(h events.Highlight) bool {
		for _, f := range filters {
			if f != nil && !f(h) {
				return false
			}
		}
		return true
	}
}

// dedup keeps the first record per source id.
func dedup(in []events.Highlight) []events.Highlight {
	seen := make(map[string]struct{}, len(in))
	out := make([]events.Highlight, 0, len(in))
	for _, h := range in {
		if _, ok := seen[h.SourceID]; ok {
			continue
		}
		seen[h.SourceID] = struct{}{}
		out = append(out, h)
	}
	return out
}

// sortRecent orders by kickoff descending; records without a kickoff go last.
func sortRecent(in []events.Highlight) {
	sort.SliceStable(in, func(i, j int) bool {
		a, b := in[i].Kickoff, in[j].Kickoff
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}

// postProcess dedups, filters, sorts, and truncates to limit (no limit when <= 0).
func postProcess(in []events.Highlight, keep filterFunc, limit int) []events.Highlight {
	out := make([]events.Highlight, 0, len(in))
	for _, h := range dedup(in) {
		if keep == nil || keep(h) {
			out = append(out, h)
		}
	}
	sortRecent(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// countMatching reports how many distinct records pass keep.
func countMatching(in []events.Highlight, keep filterFunc) int {
	seen := make(map[string]struct{}, len(in))
	n := 0
	for _, h := range in {
		if _, ok := seen[h.SourceID]; ok {
			continue
		}
		seen[h.SourceID] = struct{}{}
		if keep == nil || keep(h) {
			n++
		}
	}
	return n
}

func gamesOf(in []events.Highlight) []events.Game {
	out := make([]events.Game, len(in))
	for i, h := range in {
		out[i] = h.Game
	}
	return out
}
