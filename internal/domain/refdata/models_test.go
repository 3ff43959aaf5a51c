package refdata

import "testing"

func TestCatalogIsLeague(t *testing.T) {
	c := Catalog{MatchTypes: []MatchType{
		{ID: 1, Name: "League"},
		{ID: 2, Name: "Cup"},
		{ID: 3, Name: " league "},
	}}

	cases := []struct {
		id   int64
		want bool
	}{
		{1, true},
		{2, false},
		{3, true},
		{0, false},
		{99, false},
	}
	for _, tc := range cases {
		if got := c.IsLeague(tc.id); got != tc.want {
			t.Fatalf("IsLeague(%d) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestCatalogHasMatchType(t *testing.T) {
	c := Catalog{MatchTypes: []MatchType{{ID: 1, Name: "League"}}}
	if !c.HasMatchType(1) {
		t.Fatal("expected listed match type to be known")
	}
	if c.HasMatchType(7) || c.HasMatchType(0) {
		t.Fatal("expected unlisted match types to be unknown")
	}
}

func TestCatalogTeamName(t *testing.T) {
	c := Catalog{Teams: []Team{{ID: 7, Name: "Riverside U12"}}}
	if got := c.TeamName(7); got != "Riverside U12" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := c.TeamName(8); got != "" {
		t.Fatalf("expected empty name for unknown team, got %q", got)
	}
}
