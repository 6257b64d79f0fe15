package thesportsdb

import (
	"strings"

	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
)

func mapTeam(t teamResponse) teams.Team {
	league, _ := leagues.Parse(t.League)
	badge := strings.TrimSpace(t.Badge)
	if badge == "" {
		badge = strings.TrimSpace(t.TeamBadge)
	}
	name := strings.TrimSpace(t.Name)
	team := teams.Team{
		ID:           strings.TrimSpace(t.ID),
		League:       league,
		Name:         name,
		FullName:     name,
		Abbreviation: strings.ToUpper(strings.TrimSpace(t.Short)),
		City:         strings.TrimSpace(t.Location),
		BadgeURL:     badge,
	}
	// Prefer the roster's nickname and abbreviation when the provider's team is a known one.
	if known, ok := teams.Resolve(league, name); ok {
		team.Name = known.Name
		if team.Abbreviation == "" {
			team.Abbreviation = known.Abbreviation
		}
		if team.City == "" {
			team.City = known.City
		}
	}
	return team
}

func mapTeams(in []teamResponse) []teams.Team {
	out := make([]teams.Team, 0, len(in))
	for _, t := range in {
		if strings.TrimSpace(t.ID) == "" {
			continue
		}
		out = append(out, mapTeam(t))
	}
	return out
}
