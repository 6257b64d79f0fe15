package testutil

import (
	"time"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
)

// SampleGame returns a completed game fixture with the provided id and kickoff.
func SampleGame(id string, kickoff time.Time) events.Game {
	return events.Game{
		SourceID:  id,
		League:    leagues.NBA,
		HomeTeam:  "Boston Celtics",
		AwayTeam:  "Los Angeles Lakers",
		HomeScore: events.IntPtr(110),
		AwayScore: events.IntPtr(104),
		Status:    events.StatusFinal,
		RawStatus: "Match Finished",
		Kickoff:   events.TimePtr(kickoff),
		Season:    "2023-2024",
	}
}

// SampleScheduled returns a game fixture without scores.
func SampleScheduled(id string, kickoff time.Time) events.Highlight {
	g := SampleGame(id, kickoff)
	g.HomeScore, g.AwayScore = nil, nil
	g.Status = events.StatusScheduled
	g.RawStatus = "Not Started"
	return events.Highlight{Game: g}
}

// SampleEvent wraps a completed game as an event without media.
func SampleEvent(id string, kickoff time.Time) events.Highlight {
	return events.Highlight{Game: SampleGame(id, kickoff)}
}

// SampleHighlight returns a completed event carrying a video URL.
func SampleHighlight(id string, kickoff time.Time) events.Highlight {
	h := SampleEvent(id, kickoff)
	h.Title = h.HomeTeam + " vs " + h.AwayTeam
	h.VideoURL = "https://www.youtube.com/watch?v=" + id
	h.ThumbnailURL = "https://img.example.com/" + id + ".jpg"
	return h
}

// SampleTeam returns a minimal team fixture with the provided id.
func SampleTeam(id string) teams.Team {
	return teams.Team{
		ID:           id,
		League:       leagues.NBA,
		Name:         "Celtics",
		FullName:     "Boston Celtics",
		Abbreviation: "BOS",
		City:         "Boston",
	}
}
