package normalize

import "sports-gateway/internal/domain/leagues"

// SportsDBSource tags records decoded from TheSportsDB.
const SportsDBSource = "thesportsdb"

var sportsDBBase = Adapter{
	Source:      SportsDBSource,
	ID:          []string{"idEvent"},
	HomeName:    []string{"strHomeTeam"},
	AwayName:    []string{"strAwayTeam"},
	HomeScore:   []string{"intHomeScore"},
	AwayScore:   []string{"intAwayScore"},
	Status:      []string{"strStatus", "strProgress"},
	Timestamp:   []string{"strTimestamp"},
	Date:        []string{"dateEvent", "dateEventLocal"},
	Time:        []string{"strTime", "strTimeLocal"},
	Title:       []string{"strEvent", "strFilename"},
	Video:       []string{"strVideo"},
	Thumbnail:   []string{"strThumb", "strPoster", "strSquare", "strBanner"},
	Description: []string{"strDescriptionEN"},
	Venue:       []string{"strVenue"},
	Season:      []string{"strSeason"},
}

var sportsDBOverrides = map[leagues.League]func(*Adapter){
	leagues.NFL: func(a *Adapter) {
		a.FinalStatuses = []string{"ft", "aot", "match finished", "final"}
	},
	leagues.NBA: func(a *Adapter) {
		a.FinalStatuses = []string{"ft", "aot", "match finished"}
	},
	leagues.MLB: func(a *Adapter) {
		a.FinalStatuses = []string{"ft", "match finished", "final", "aet"}
		a.Thumbnail = []string{"strThumb", "strSquare", "strPoster", "strBanner"}
	},
	leagues.NHL: func(a *Adapter) {
		// Shootout results are reported as "AP" (after penalties).
		a.FinalStatuses = []string{"ft", "aot", "ap", "after penalties", "match finished"}
	},
}

// native describes the shapes each league's dedicated API returns; the static fallback dataset
// is stored in these shapes.
var native = map[leagues.League]Adapter{
	leagues.NBA: {
		Source:    "balldontlie",
		ID:        []string{"id"},
		HomeName:  []string{"home_team.full_name", "home_team.name"},
		AwayName:  []string{"visitor_team.full_name", "visitor_team.name"},
		HomeScore: []string{"home_team_score"},
		AwayScore: []string{"visitor_team_score"},
		Status:    []string{"status"},
		Timestamp: []string{"datetime", "date"},
		Date:      []string{"date"},
		Title:     []string{"title"},
		Video:     []string{"video_url"},
		Thumbnail: []string{"thumbnail_url"},
		Season:    []string{"season"},
	},
	leagues.NFL: apiSports("apisports-nfl"),
	leagues.MLB: apiSports("apisports-mlb"),
	leagues.NHL: {
		Source:    "nhlstats",
		ID:        []string{"gamePk"},
		HomeName:  []string{"teams.home.team.name"},
		AwayName:  []string{"teams.away.team.name"},
		HomeScore: []string{"teams.home.score"},
		AwayScore: []string{"teams.away.score"},
		Status:    []string{"status.detailedState", "status.abstractGameState"},
		Timestamp: []string{"gameDate"},
		Title:     []string{"content.title"},
		Video:     []string{"content.media.url"},
		Thumbnail: []string{"content.media.image"},
		Venue:     []string{"venue.name"},
		Season:    []string{"season"},
	},
}

func apiSports(source string) Adapter {
	return Adapter{
		Source:      source,
		ID:          []string{"id", "game.id"},
		HomeName:    []string{"teams.home.name"},
		AwayName:    []string{"teams.away.name"},
		HomeScore:   []string{"scores.home.total", "scores.home"},
		AwayScore:   []string{"scores.away.total", "scores.away"},
		Status:      []string{"status.long", "status.short"},
		Timestamp:   []string{"date", "game.date.timestamp"},
		Title:       []string{"highlight.title"},
		Video:       []string{"highlight.video"},
		Thumbnail:   []string{"highlight.thumbnail"},
		Description: []string{"highlight.description"},
		Venue:       []string{"venue.name", "game.venue.name"},
		Season:      []string{"league.season"},
	}
}

// SportsDB returns the TheSportsDB adapter for a league.
func SportsDB(l leagues.League) Adapter {
	a := sportsDBBase
	if override, ok := sportsDBOverrides[l]; ok {
		override(&a)
	}
	return a
}

// Native returns the adapter for a league's dedicated API shape.
func Native(l leagues.League) (Adapter, bool) {
	a, ok := native[l]
	return a, ok
}
