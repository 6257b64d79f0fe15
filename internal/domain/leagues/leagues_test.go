package leagues

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want League
		ok   bool
	}{
		{"NBA", NBA, true},
		{"nfl", NFL, true},
		{" Mlb ", MLB, true},
		{"nhl", NHL, true},
		{"MLS", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := Parse(tc.raw)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Parse(%q) expected (%s,%v), got (%s,%v)", tc.raw, tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestGameCaps(t *testing.T) {
	if NFL.GameCap() != 15 {
		t.Fatalf("expected NFL cap 15, got %d", NFL.GameCap())
	}
	for _, l := range []League{NBA, MLB, NHL} {
		if l.GameCap() != 20 {
			t.Fatalf("expected %s cap 20, got %d", l, l.GameCap())
		}
	}
	if League("XFL").GameCap() != 0 {
		t.Fatalf("expected zero cap for unsupported league")
	}
}

func TestProviderIDs(t *testing.T) {
	want := map[League]string{NBA: "4387", NFL: "4391", MLB: "4424", NHL: "4380"}
	for l, id := range want {
		if got := l.ProviderID(); got != id {
			t.Fatalf("%s expected provider id %s, got %s", l, id, got)
		}
	}
}

func TestAllIsStable(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("expected 4 leagues, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("expected sorted leagues, got %v", all)
		}
	}
	if infos := Infos(); len(infos) != 4 || infos[0].League != all[0] {
		t.Fatalf("expected infos aligned with All, got %+v", infos)
	}
}
