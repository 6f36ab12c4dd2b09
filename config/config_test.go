package config

import (
	"testing"
	"time"
)

func TestNew_defaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if c.LeagueID != 412037 {
		t.Errorf("unexpected league id: %d", c.LeagueID)
	}
	if len(c.Team1Entries) != 3 || len(c.Team2Entries) != 3 {
		t.Errorf("unexpected rosters: %v vs %v", c.Team1Entries, c.Team2Entries)
	}
	if c.EntryNames[4909598] != "grmilica" {
		t.Errorf("unexpected entry names: %v", c.EntryNames)
	}
	if c.RefreshInterval != 55*time.Minute {
		t.Errorf("unexpected refresh interval: %v", c.RefreshInterval)
	}
}

func TestNew_fromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TEAM1_NAME", "Crveni")
	t.Setenv("TEAM1_ENTRIES", "1,2")
	t.Setenv("TEAM2_ENTRIES", "3,4")
	t.Setenv("ENTRY_NAMES", "1:Pera,2:Mika,3:Laza,4:Zika")

	c, err := New()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if c.Port != 8080 {
		t.Errorf("unexpected port: %d", c.Port)
	}
	if c.Team1Name != "Crveni" {
		t.Errorf("unexpected team name: %q", c.Team1Name)
	}
	if len(c.Team1Entries) != 2 || c.Team1Entries[0] != 1 {
		t.Errorf("unexpected entries: %v", c.Team1Entries)
	}
	if c.EntryName(3) != "Laza" {
		t.Errorf("unexpected entry name: %q", c.EntryName(3))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid",
			config: Config{Team1Entries: []int{1, 2}, Team2Entries: []int{3, 4}, CacheCapacity: 64},
		},
		{
			name:    "empty roster",
			config:  Config{Team1Entries: nil, Team2Entries: []int{3}, CacheCapacity: 64},
			wantErr: true,
		},
		{
			name:    "entry on both teams",
			config:  Config{Team1Entries: []int{1, 2}, Team2Entries: []int{2}, CacheCapacity: 64},
			wantErr: true,
		},
		{
			name:    "bad cache capacity",
			config:  Config{Team1Entries: []int{1}, Team2Entries: []int{2}, CacheCapacity: 0},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.validate()
			if tc.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("error should have been nil, was: %v", err)
			}
		})
	}
}

func TestEntryName_fallback(t *testing.T) {
	c := Config{EntryNames: map[int]string{1: "Pera"}}
	if got := c.EntryName(999); got != "Entry 999" {
		t.Errorf("unexpected fallback: %q", got)
	}
}

func TestRosterEntries(t *testing.T) {
	c := Config{Team1Entries: []int{1, 2}, Team2Entries: []int{3}}

	all := c.RosterEntries()
	if len(all) != 3 || all[0] != 1 || all[2] != 3 {
		t.Errorf("unexpected roster: %v", all)
	}
	if !c.OnTeam1(2) || c.OnTeam1(3) {
		t.Error("unexpected team 1 membership")
	}
	if !c.OnTeam2(3) || c.OnTeam2(1) {
		t.Error("unexpected team 2 membership")
	}
}
