// Package fixture serves a static per-league dataset. It backs PROVIDER=fixture for local runs
// and is the last-resort fallback when neither live data nor a cached entry is available.
package fixture

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/providers"
	"sports-gateway/internal/providers/normalize"
	"sports-gateway/internal/timeutil"
)

const (
	providerName = "fixture"
	// demoVideoURL stands in for every fallback highlight video.
	demoVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
)

//go:embed data/*.json
var dataFS embed.FS

type dataset struct {
	Events []fixtureEvent `json:"events"`
}

// fixtureEvent is stored relative to "today" so the dataset never ages.
type fixtureEvent struct {
	DaysAgo int           `json:"daysAgo"`
	Hour    int           `json:"hour"`
	Shape   string        `json:"shape"`
	Event   normalize.Raw `json:"event"`
}

// Provider returns a static set of events per league.
type Provider struct {
	now func() time.Time
	loc *time.Location

	once    sync.Once
	data    map[leagues.League][]fixtureEvent
	loadErr error
}

// New creates a fixture provider. Day boundaries are computed in the named timezone.
func New(timezone string) *Provider {
	return &Provider{
		now: time.Now,
		loc: timeutil.ResolveLocation(timezone),
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string { return providerName }

func (p *Provider) load() (map[leagues.League][]fixtureEvent, error) {
	p.once.Do(func() {
		p.data = make(map[leagues.League][]fixtureEvent)
		for _, l := range leagues.All() {
			raw, err := dataFS.ReadFile("data/" + strings.ToLower(l.String()) + ".json")
			if err != nil {
				p.loadErr = fmt.Errorf("fixture: read %s: %w", l, err)
				return
			}
			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.UseNumber()
			var ds dataset
			if err := dec.Decode(&ds); err != nil {
				p.loadErr = fmt.Errorf("fixture: decode %s: %w", l, err)
				return
			}
			p.data[l] = ds.Events
		}
	})
	return p.data, p.loadErr
}

// FetchEventsByDay returns the events scheduled on date.
func (p *Provider) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := p.load()
	if err != nil {
		return nil, err
	}
	day, err := time.ParseInLocation("2006-01-02", date, p.loc)
	if err != nil {
		return nil, fmt.Errorf("fixture: invalid date %q: %w", date, err)
	}
	daysAgo := int(math.Round(p.today().Sub(day).Hours() / 24))

	out := make([]events.Highlight, 0)
	for _, fe := range data[league] {
		if fe.DaysAgo != daysAgo {
			continue
		}
		out = append(out, p.normalize(league, fe))
	}
	return out, nil
}

// Events returns the whole dataset for a league, newest first.
func (p *Provider) Events(league leagues.League) []events.Highlight {
	data, err := p.load()
	if err != nil {
		return nil
	}
	out := make([]events.Highlight, 0, len(data[league]))
	for _, fe := range data[league] {
		out = append(out, p.normalize(league, fe))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Kickoff.After(*out[j].Kickoff)
	})
	return out
}

// Highlights returns the dataset for a league. When a team is named and nothing in the dataset
// involves it, a generic highlight for that team is returned instead.
func (p *Provider) Highlights(league leagues.League, team string) []events.Highlight {
	all := p.Events(league)
	team = strings.TrimSpace(team)
	if team == "" {
		return all
	}
	name := teams.DisplayName(league, team)
	for _, h := range all {
		if h.HasVideo() && h.Involves(name) {
			return all
		}
	}
	kickoff := p.today()
	generic := events.Highlight{
		Game: events.Game{
			SourceID: fmt.Sprintf("%s-%s-%s", providerName, strings.ToLower(league.String()), strings.ToLower(strings.ReplaceAll(name, " ", "-"))),
			League:   league,
			HomeTeam: name,
			AwayTeam: events.PlaceholderAwayTeam,
			Status:   events.StatusFinal,
			Kickoff:  &kickoff,
		},
		Title:    name + " Game Highlights",
		VideoURL: demoVideoURL,
	}
	return append([]events.Highlight{generic}, all...)
}

// SearchTeams matches the static rosters by name, nickname or abbreviation.
func (p *Provider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	out := make([]teams.Team, 0)
	if needle == "" {
		return out, nil
	}
	for _, l := range leagues.All() {
		for _, t := range teams.Roster(l) {
			if strings.Contains(strings.ToLower(t.FullName), needle) || strings.EqualFold(t.Abbreviation, needle) {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

// LookupTeam finds a roster team by id.
func (p *Provider) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return teams.Team{}, err
	}
	for _, l := range leagues.All() {
		for _, t := range teams.Roster(l) {
			if strings.EqualFold(t.ID, strings.TrimSpace(id)) {
				return t, nil
			}
		}
	}
	return teams.Team{}, fmt.Errorf("%s: team %q: %w", providerName, id, providers.ErrTeamNotFound)
}

func (p *Provider) normalize(league leagues.League, fe fixtureEvent) events.Highlight {
	adapter := normalize.SportsDB(league)
	if fe.Shape == "native" {
		if native, ok := normalize.Native(league); ok {
			adapter = native
		}
	}
	h := adapter.Normalize(league, fe.Event)
	kickoff := p.today().AddDate(0, 0, -fe.DaysAgo).Add(time.Duration(fe.Hour) * time.Hour).UTC()
	h.Kickoff = &kickoff
	h.SourceID = providerName + ":" + h.SourceID
	return h
}

func (p *Provider) today() time.Time {
	now := p.now().In(p.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.loc)
}
