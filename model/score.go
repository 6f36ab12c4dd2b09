package model

// GameweekResult is one row of an entry's season history: the net points
// scored in a single gameweek.
type GameweekResult struct {
	Event         int
	Points        int
	TransfersCost int
}

// NetPoints is the score that counts for the tabela: gameweek points minus
// any transfer hits taken that week.
func (r GameweekResult) NetPoints() int {
	return r.Points - r.TransfersCost
}

// EntrySeason is an entry's net score for every completed gameweek.
type EntrySeason struct {
	EntryID      int
	Name         string
	ScoresByWeek map[int]int
}

func (e *EntrySeason) SeasonTotal() int {
	total := 0
	for _, points := range e.ScoresByWeek {
		total += points
	}
	return total
}

// HasScores reports whether the entry has any weekly data yet. False for
// every entry means the season hasn't started.
func (e *EntrySeason) HasScores() bool {
	return len(e.ScoresByWeek) > 0
}
