package leagues

import (
	"sort"
	"strings"
)

// League identifies one of the supported sports leagues.
type League string

const (
	NFL League = "NFL"
	NBA League = "NBA"
	MLB League = "MLB"
	NHL League = "NHL"
)

// Info describes a league and how the upstream provider knows it.
type Info struct {
	League     League `json:"league"`
	Name       string `json:"name"`
	Sport      string `json:"sport"`
	ProviderID string `json:"providerId"`
	// GameCap bounds how many completed games are returned for the league.
	GameCap int `json:"gameCap"`
}

var registry = map[League]Info{
	NFL: {League: NFL, Name: "National Football League", Sport: "American Football", ProviderID: "4391", GameCap: 15},
	NBA: {League: NBA, Name: "National Basketball Association", Sport: "Basketball", ProviderID: "4387", GameCap: 20},
	MLB: {League: MLB, Name: "Major League Baseball", Sport: "Baseball", ProviderID: "4424", GameCap: 20},
	NHL: {League: NHL, Name: "National Hockey League", Sport: "Ice Hockey", ProviderID: "4380", GameCap: 20},
}

// Parse resolves a case-insensitive league identifier. The bool is false for unsupported values.
func Parse(raw string) (League, bool) {
	l := League(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := registry[l]; !ok {
		return "", false
	}
	return l, true
}

// Lookup returns the registry entry for l.
func Lookup(l League) (Info, bool) {
	info, ok := registry[l]
	return info, ok
}

// All returns every supported league in a stable order.
func All() []League {
	out := make([]League, 0, len(registry))
	for l := range registry {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Infos returns registry entries for every supported league in a stable order.
func Infos() []Info {
	all := All()
	out := make([]Info, 0, len(all))
	for _, l := range all {
		out = append(out, registry[l])
	}
	return out
}

// GameCap returns the game cap for l, or 0 for an unsupported league.
func (l League) GameCap() int {
	return registry[l].GameCap
}

// ProviderID returns the upstream league id for l.
func (l League) ProviderID() string {
	return registry[l].ProviderID
}

func (l League) String() string {
	return string(l)
}
