package model

// LeagueEntry is one fantasy manager's row in the classic league table.
type LeagueEntry struct {
	EntryID    int
	EntryName  string
	PlayerName string
	Total      int
}

type LeagueStandings struct {
	LeagueName string
	Entries    []LeagueEntry
}

// EntryIDs returns the entry IDs in standings order.
func (s *LeagueStandings) EntryIDs() []int {
	ids := make([]int, 0, len(s.Entries))
	for _, e := range s.Entries {
		ids = append(ids, e.EntryID)
	}
	return ids
}
