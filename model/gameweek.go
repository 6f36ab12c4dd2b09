package model

const (
	// The FPL season runs over a fixed range of gameweeks.
	FirstWeek = 1
	LastWeek  = 38
)

// Match and gameweek states as reported (or derived) from the FPL API.
const (
	StatusNotStarted = "not_started"
	StatusLive       = "live"
	StatusFinished   = "finished"
)

type Gameweek struct {
	ID        int
	Name      string
	IsCurrent bool
	Finished  bool
}

// GameweekState describes where the season currently is. Current is the
// gameweek scores are fetched for, Display is the most recent gameweek that
// has data worth showing.
type GameweekState struct {
	Current int
	Display int
	Status  string
}

func (s GameweekState) IsLive() bool {
	return s.Status == StatusLive
}

func (s GameweekState) IsFinished() bool {
	return s.Status == StatusFinished
}

// DeriveGameweekState computes the current gameweek status from the bootstrap
// event list. When no gameweek is marked current yet (pre-season) the last
// finished gameweek is displayed, defaulting to week 1.
func DeriveGameweekState(events []Gameweek) GameweekState {
	var current *Gameweek
	for i := range events {
		if events[i].IsCurrent {
			current = &events[i]
			break
		}
	}

	if current == nil {
		display := FirstWeek
		for _, e := range events {
			if e.Finished {
				display = e.ID
			}
		}
		return GameweekState{Current: display, Display: display, Status: StatusNotStarted}
	}

	if current.Finished {
		return GameweekState{Current: current.ID, Display: current.ID, Status: StatusFinished}
	}
	return GameweekState{Current: current.ID, Display: current.ID, Status: StatusLive}
}
