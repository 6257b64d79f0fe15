// Package normalize turns heterogeneous upstream event payloads into canonical records.
//
// Each upstream shape is described by a declarative Adapter: ordered lists of dot-separated
// field paths per canonical field. Leagues select their adapter from a table instead of
// branching on field names in code.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
)

// Adapter maps one upstream event shape onto the canonical record.
type Adapter struct {
	Source      string
	ID          []string
	HomeName    []string
	AwayName    []string
	HomeScore   []string
	AwayScore   []string
	Status      []string
	Timestamp   []string
	Date        []string
	Time        []string
	Title       []string
	Video       []string
	Thumbnail   []string
	Description []string
	Venue       []string
	Season      []string
	// FinalStatuses lists lower-cased raw statuses that end a game in this league,
	// checked before the shared vocabulary.
	FinalStatuses []string
}

// Normalize converts one raw event. Missing fields degrade to placeholders and nil values.
func (a Adapter) Normalize(league leagues.League, raw Raw) events.Highlight {
	home := firstString(raw, a.HomeName)
	if home == "" {
		home = events.PlaceholderHomeTeam
	}
	away := firstString(raw, a.AwayName)
	if away == "" {
		away = events.PlaceholderAwayTeam
	}

	var kickoff *time.Time
	if ts, ok := parseTimestamp(firstString(raw, a.Timestamp)); ok {
		kickoff = &ts
	} else if ts, ok := parseDateTime(firstString(raw, a.Date), firstString(raw, a.Time)); ok {
		kickoff = &ts
	}

	rawStatus := firstString(raw, a.Status)
	game := events.Game{
		League:    league,
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: firstInt(raw, a.HomeScore),
		AwayScore: firstInt(raw, a.AwayScore),
		Status:    a.mapStatus(rawStatus),
		RawStatus: rawStatus,
		Kickoff:   kickoff,
		Venue:     firstString(raw, a.Venue),
		Season:    firstString(raw, a.Season),
	}
	game.SourceID = prefixed(a.Source, firstString(raw, a.ID))
	if game.SourceID == "" {
		game.SourceID = syntheticID(a.Source, league.String(), game.DateLabel(), home, away)
	}

	title := firstString(raw, a.Title)
	if title == "" {
		title = fmt.Sprintf("%s vs %s", home, away)
	}
	return events.Highlight{
		Game:         game,
		Title:        title,
		VideoURL:     firstString(raw, a.Video),
		ThumbnailURL: firstString(raw, a.Thumbnail),
		Description:  firstString(raw, a.Description),
	}
}

// NormalizeAll converts a batch of raw events.
func (a Adapter) NormalizeAll(league leagues.League, raws []Raw) []events.Highlight {
	out := make([]events.Highlight, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}
		out = append(out, a.Normalize(league, raw))
	}
	return out
}

func (a Adapter) mapStatus(raw string) events.Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, final := range a.FinalStatuses {
		if s == final {
			return events.StatusFinal
		}
	}
	return MapStatus(raw)
}

// MapStatus maps the shared upstream status vocabulary onto canonical statuses.
func MapStatus(raw string) events.Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "final", "ft", "ended", "match finished", "finished", "aot", "aet", "after over time":
		return events.StatusFinal
	case "in progress", "live", "halftime", "ht", "end of period", "in play", "q1", "q2", "q3", "q4", "ot", "p1", "p2", "p3":
		return events.StatusInProgress
	case "postponed", "pst", "suspended":
		return events.StatusPostponed
	case "canceled", "cancelled", "canc", "abandoned":
		return events.StatusCanceled
	}
	if strings.HasPrefix(s, "final") {
		return events.StatusFinal
	}
	return events.StatusScheduled
}
