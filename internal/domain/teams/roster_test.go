package teams

import (
	"testing"

	"sports-gateway/internal/domain/leagues"
)

func TestRosterSizes(t *testing.T) {
	want := map[leagues.League]int{leagues.NFL: 32, leagues.NBA: 30, leagues.MLB: 30, leagues.NHL: 32}
	for l, n := range want {
		if got := len(Roster(l)); got != n {
			t.Fatalf("%s expected %d teams, got %d", l, n, got)
		}
	}
}

func TestRosterReturnsCopy(t *testing.T) {
	r := Roster(leagues.NBA)
	r[0].Name = "mutated"
	if Roster(leagues.NBA)[0].Name == "mutated" {
		t.Fatalf("expected roster copy to be isolated")
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		league leagues.League
		input  string
		want   string
		ok     bool
	}{
		{leagues.NBA, "lal", "Los Angeles Lakers", true},
		{leagues.NFL, "Kansas City Chiefs", "Kansas City Chiefs", true},
		{leagues.NHL, "bruins", "Boston Bruins", true},
		{leagues.MLB, "nyy", "New York Yankees", true},
		{leagues.MLB, "LAL", "", false},
		{leagues.NBA, "", "", false},
	}
	for _, tc := range cases {
		got, ok := Resolve(tc.league, tc.input)
		if ok != tc.ok || got.FullName != tc.want {
			t.Fatalf("Resolve(%s,%q) expected (%s,%v), got (%s,%v)", tc.league, tc.input, tc.want, tc.ok, got.FullName, ok)
		}
	}
}

func TestDisplayNameFallsBackToInput(t *testing.T) {
	if got := DisplayName(leagues.NHL, "TOR"); got != "Toronto Maple Leafs" {
		t.Fatalf("expected resolved name, got %s", got)
	}
	if got := DisplayName(leagues.NHL, "  Somebody  "); got != "Somebody" {
		t.Fatalf("expected trimmed input, got %s", got)
	}
}
