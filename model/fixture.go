package model

// Stat identifiers used from the fixture stats lists.
const (
	StatBPS     = "bps"
	StatMinutes = "minutes"
)

// StatValue is a single footballer's value for one fixture stat.
type StatValue struct {
	Element int
	Value   int
}

// FixtureStat holds one stat (bps, minutes, goals...) for both sides of a
// fixture.
type FixtureStat struct {
	Identifier string
	Home       []StatValue
	Away       []StatValue
}

type Fixture struct {
	Event               int
	HomeClub            int
	AwayClub            int
	Started             bool
	Finished            bool
	FinishedProvisional bool
	Minutes             int
	Stats               []FixtureStat
}

// Settled reports whether the fixture's points can be trusted as final.
// The API flips finished_provisional well before finished, so a provisional
// result that has played at least 90 minutes counts too.
func (f *Fixture) Settled() bool {
	return f.Finished || (f.FinishedProvisional && f.Minutes >= 90)
}

func (f *Fixture) Status() string {
	switch {
	case f.Settled():
		return StatusFinished
	case f.Started:
		return StatusLive
	default:
		return StatusNotStarted
	}
}

// Stat returns the fixture stat with the given identifier, or nil.
func (f *Fixture) Stat(identifier string) *FixtureStat {
	for i := range f.Stats {
		if f.Stats[i].Identifier == identifier {
			return &f.Stats[i]
		}
	}
	return nil
}

// ClubStatuses maps each club playing in the given fixtures to the status of
// its match.
func ClubStatuses(fixtures []Fixture) map[int]string {
	statuses := make(map[int]string)
	for i := range fixtures {
		status := fixtures[i].Status()
		statuses[fixtures[i].HomeClub] = status
		statuses[fixtures[i].AwayClub] = status
	}
	return statuses
}
