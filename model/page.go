package model

// WeekRow is one row of the tabela: both teams' summed score for a week.
type WeekRow struct {
	Week  int
	Team1 int
	Team2 int
}

// TeamView is everything the template needs for one side of the tabela.
type TeamView struct {
	Name    string
	Entries []EntrySeason
	Live    []EntryLive
	Sums    map[int]int
	Wins    int
	Total   int
}

// StandingsPage is the full view model for the index page.
type StandingsPage struct {
	LeagueName string
	State      GameweekState
	HasData    bool
	Team1      TeamView
	Team2      TeamView
	Rows       []WeekRow
	LeagueLive []LeagueLiveRow
}

// TeamDetails is the JSON payload for the team details endpoint.
type TeamDetails struct {
	EntryID     int          `json:"entry_id"`
	StartingXI  []PickDetail `json:"starting_xi"`
	Bench       []PickDetail `json:"bench"`
	TotalPoints int          `json:"total_points"`
	BenchPoints int          `json:"bench_points"`
	ActiveChip  string       `json:"active_chip,omitempty"`
}

// PickDetail is one squad slot in the team details payload. Points are
// multiplier-adjusted for starters and base points for the bench.
type PickDetail struct {
	Name          string `json:"name"`
	Points        int    `json:"points"`
	Multiplier    int    `json:"multiplier"`
	IsCaptain     bool   `json:"is_captain"`
	IsViceCaptain bool   `json:"is_vice_captain"`
}
