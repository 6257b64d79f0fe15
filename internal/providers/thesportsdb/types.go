package thesportsdb

import "sports-gateway/internal/providers/normalize"

// eventsResponse is the eventsday.php payload. "events" is null on days without games.
type eventsResponse struct {
	Events []normalize.Raw `json:"events"`
}

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID        string `json:"idTeam"`
	Name      string `json:"strTeam"`
	Short     string `json:"strTeamShort"`
	Alternate string `json:"strAlternate"`
	League    string `json:"strLeague"`
	Location  string `json:"strLocation"`
	Badge     string `json:"strBadge"`
	TeamBadge string `json:"strTeamBadge"`
}

// relayEnvelope is the JSON wrapper returned by the relay.
type relayEnvelope struct {
	Contents string `json:"contents"`
	Status   struct {
		HTTPCode int `json:"http_code"`
	} `json:"status"`
}
