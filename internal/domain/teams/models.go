package teams

import "sports-gateway/internal/domain/leagues"

// Team represents the normalized team shape used by rosters and provider lookups.
type Team struct {
	ID           string         `json:"id"`
	League       leagues.League `json:"league"`
	Name         string         `json:"name"`
	FullName     string         `json:"fullName"`
	Abbreviation string         `json:"abbreviation"`
	City         string         `json:"city,omitempty"`
	BadgeURL     string         `json:"badgeUrl,omitempty"`
}
