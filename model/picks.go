package model

// Pick is one slot in an entry's squad for a gameweek. Positions 1-11 are
// the starting XI, 12-15 the bench. The multiplier is 0 for benched
// footballers, 2 for the captain and 3 when the triple captain chip is on.
type Pick struct {
	Element       int
	Position      int
	Multiplier    int
	IsCaptain     bool
	IsViceCaptain bool
}

func (p Pick) Benched() bool {
	return p.Multiplier == 0
}

type Picks struct {
	EntryID       int
	Event         int
	Picks         []Pick
	ActiveChip    string
	TransfersCost int
}

// Captain returns the captain pick, or nil when the picks are empty.
func (p *Picks) Captain() *Pick {
	for i := range p.Picks {
		if p.Picks[i].IsCaptain {
			return &p.Picks[i]
		}
	}
	return nil
}
