package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all of the settings for the service. Everything is read from
// the environment so that the container image stays generic.
type Config struct {
	Port       int    `envconfig:"PORT" default:"3000"`
	FPLBaseURL string `envconfig:"FPL_BASE_URL" default:"https://fantasy.premierleague.com/api"`

	// The classic league both teams play in.
	LeagueID int `envconfig:"LEAGUE_ID" default:"412037"`

	Team1Name    string `envconfig:"TEAM1_NAME" default:"Team 1"`
	Team2Name    string `envconfig:"TEAM2_NAME" default:"Team 2"`
	Team1Entries []int  `envconfig:"TEAM1_ENTRIES" default:"4909598,4658819,3070732"`
	Team2Entries []int  `envconfig:"TEAM2_ENTRIES" default:"2227937,4895434,729967"`

	// Display names for the league entries, keyed by entry ID.
	EntryNames map[int]string `envconfig:"ENTRY_NAMES" default:"4909598:grmilica,4658819:Hell Patrol,3070732:NEPOBEDIVI,2227937:Sport bar 22,4895434:ValjevoJeSvetoMesto,729967:mixXx007"`

	// Maximum number of entries the cache will hold before evicting.
	CacheCapacity int `envconfig:"CACHE_CAPACITY" default:"256"`

	// How often the background job re-warms the bootstrap data.
	RefreshInterval time.Duration `envconfig:"BOOTSTRAP_REFRESH_INTERVAL" default:"55m"`

	AdminUser string `envconfig:"ADMIN_USER" default:"admin"`
	AdminPass string `envconfig:"ADMIN_PASS" default:"pa55word"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if len(c.Team1Entries) == 0 || len(c.Team2Entries) == 0 {
		return errors.New("both teams need at least one entry")
	}
	seen := make(map[int]bool)
	for _, id := range c.Team1Entries {
		seen[id] = true
	}
	for _, id := range c.Team2Entries {
		if seen[id] {
			return fmt.Errorf("entry %d is on both teams", id)
		}
	}
	if c.CacheCapacity <= 0 {
		return fmt.Errorf("cache capacity must be positive, got %d", c.CacheCapacity)
	}
	return nil
}

// EntryName returns the configured display name for a league entry, or a
// generic fallback when the entry isn't one of ours.
func (c *Config) EntryName(entryID int) string {
	if n, ok := c.EntryNames[entryID]; ok {
		return n
	}
	return fmt.Sprintf("Entry %d", entryID)
}

// RosterEntries returns the entry IDs of both teams combined.
func (c *Config) RosterEntries() []int {
	all := make([]int, 0, len(c.Team1Entries)+len(c.Team2Entries))
	all = append(all, c.Team1Entries...)
	all = append(all, c.Team2Entries...)
	return all
}

// OnTeam1 reports whether the entry plays for team 1.
func (c *Config) OnTeam1(entryID int) bool {
	return contains(c.Team1Entries, entryID)
}

// OnTeam2 reports whether the entry plays for team 2.
func (c *Config) OnTeam2(entryID int) bool {
	return contains(c.Team2Entries, entryID)
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
