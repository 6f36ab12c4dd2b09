package testutils

import (
	"time"

	"github.com/itbasis/go-clock"
	"github.com/milica1221/fpl/config"
)

// TestEnv bundles the pieces most controller and web tests need: a fake FPL
// API, a mock clock to drive cache expirations, and a config matching the
// fake data set.
type TestEnv struct {
	Clock   *clock.Mock
	Config  *config.Config
	FakeFPL *FakeFPLServer
}

func NewTestEnv() *TestEnv {
	return &TestEnv{
		Clock:   clock.NewMock(),
		Config:  NewTestConfig(),
		FakeFPL: NewFakeFPLServer(),
	}
}

func (e *TestEnv) Close() {
	e.FakeFPL.Close()
}

// NewTestConfig matches the entries and league in the fpldata files.
func NewTestConfig() *config.Config {
	return &config.Config{
		Port:         3000,
		LeagueID:     99001,
		Team1Name:    "Team 1",
		Team2Name:    "Team 2",
		Team1Entries: []int{101, 102, 103},
		Team2Entries: []int{201, 202, 203},
		EntryNames: map[int]string{
			101: "grmilica",
			102: "Hell Patrol",
			103: "NEPOBEDIVI",
			201: "Sport bar 22",
			202: "ValjevoJeSvetoMesto",
			203: "mixXx007",
		},
		CacheCapacity:   64,
		RefreshInterval: 55 * time.Minute,
		AdminUser:       "admin",
		AdminPass:       "pa55word",
	}
}
