package teams

import (
	"strings"

	"sports-gateway/internal/domain/leagues"
)

// Roster returns a copy of the static roster for a league.
func Roster(l leagues.League) []Team {
	src := rosterTable[l]
	out := make([]Team, len(src))
	copy(out, src)
	return out
}

// Resolve finds a roster team by abbreviation, full name, or nickname (case-insensitive).
func Resolve(l leagues.League, nameOrAbbr string) (Team, bool) {
	needle := strings.TrimSpace(nameOrAbbr)
	if needle == "" {
		return Team{}, false
	}
	for _, t := range rosterTable[l] {
		if strings.EqualFold(t.Abbreviation, needle) || strings.EqualFold(t.ID, needle) {
			return t, true
		}
	}
	for _, t := range rosterTable[l] {
		if strings.EqualFold(t.FullName, needle) || strings.EqualFold(t.Name, needle) {
			return t, true
		}
	}
	return Team{}, false
}

// DisplayName returns the full team name for nameOrAbbr when it is a known roster entry,
// otherwise the input trimmed.
func DisplayName(l leagues.League, nameOrAbbr string) string {
	if t, ok := Resolve(l, nameOrAbbr); ok {
		return t.FullName
	}
	return strings.TrimSpace(nameOrAbbr)
}
