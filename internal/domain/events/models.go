package events

import (
	"strings"
	"time"

	"sports-gateway/internal/domain/leagues"
)

// Status mirrors the shared contract for game lifecycle states.
type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinal      Status = "FINAL"
	StatusPostponed  Status = "POSTPONED"
	StatusCanceled   Status = "CANCELED"
)

// Placeholders used when upstream omits a field.
const (
	PlaceholderHomeTeam = "Home Team"
	PlaceholderAwayTeam = "Away Team"
	PlaceholderDate     = "Date TBD"
)

// Game is the canonical game record returned by the gateway.
type Game struct {
	SourceID  string         `json:"sourceId"`
	League    leagues.League `json:"league"`
	HomeTeam  string         `json:"homeTeamName"`
	AwayTeam  string         `json:"awayTeamName"`
	HomeScore *int           `json:"homeScore"`
	AwayScore *int           `json:"awayScore"`
	Status    Status         `json:"status"`
	RawStatus string         `json:"rawStatus,omitempty"`
	Kickoff   *time.Time     `json:"kickoffTimestamp"`
	Venue     string         `json:"venue,omitempty"`
	Season    string         `json:"season,omitempty"`
}

// Completed reports whether both scores are known.
func (g Game) Completed() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// DateLabel returns the kickoff date or a placeholder when unknown.
func (g Game) DateLabel() string {
	if g.Kickoff == nil || g.Kickoff.IsZero() {
		return PlaceholderDate
	}
	return g.Kickoff.Format("2006-01-02")
}

// Involves reports whether either side's name contains the given team name (case-insensitive).
func (g Game) Involves(team string) bool {
	team = strings.ToLower(strings.TrimSpace(team))
	if team == "" {
		return true
	}
	return strings.Contains(strings.ToLower(g.HomeTeam), team) ||
		strings.Contains(strings.ToLower(g.AwayTeam), team)
}

// Highlight is a game record with attached media. Every upstream event is decoded into
// this shape; games drop the media fields.
type Highlight struct {
	Game
	Title        string `json:"title,omitempty"`
	VideoURL     string `json:"videoUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Description  string `json:"description,omitempty"`
}

// HasVideo reports whether the highlight carries a playable video URL.
func (h Highlight) HasVideo() bool {
	return strings.TrimSpace(h.VideoURL) != ""
}

// IntPtr is a convenience for building scores.
func IntPtr(v int) *int {
	return &v
}

// TimePtr is a convenience for building kickoff timestamps.
func TimePtr(t time.Time) *time.Time {
	return &t
}
