package model

// ElementLive is one footballer's stats from the live endpoint for a
// gameweek.
type ElementLive struct {
	ID          int
	Minutes     int
	Bonus       int
	TotalPoints int
}

// PlayerPoints pairs a footballer's name with the points they contributed
// to an entry, multipliers included.
type PlayerPoints struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// CaptainInfo describes how an entry's captain is doing this gameweek.
// Points stay at zero until the captain's match kicks off.
type CaptainInfo struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	Played    bool   `json:"played"`
	IsPlaying bool   `json:"is_playing"`
}

// PlayerState is a picked footballer shown in the "still to play" panel.
type PlayerState struct {
	Name          string `json:"name"`
	Status        string `json:"status"`
	IsCaptain     bool   `json:"is_captain"`
	IsViceCaptain bool   `json:"is_vice_captain"`
	Multiplier    int    `json:"multiplier"`
}

// EntryLive is an entry's summary for the gameweek in progress.
type EntryLive struct {
	EntryID        int
	Name           string
	GameweekPoints int
	BenchPoints    int
	CaptainPoints  int
	Best           []PlayerPoints
	Worst          []PlayerPoints
	TransfersCost  int
	SeasonTotal    int
	Event          int
}

// LeagueLiveRow is one row of the live league table: the standings entry
// plus everything happening this gameweek.
type LeagueLiveRow struct {
	LeagueEntry
	LivePoints int
	Captain    *CaptainInfo
	Waiting    []PlayerState
	Playing    []PlayerState
}

func (r LeagueLiveRow) ToPlayCount() int {
	return len(r.Waiting) + len(r.Playing)
}

func (r LeagueLiveRow) HasLivePlayers() bool {
	return len(r.Playing) > 0
}
