package model

import "fmt"

// Footballer is a Premier League player from the bootstrap data, not to be
// confused with the fantasy managers whose entries make up the two teams.
type Footballer struct {
	ID         int
	FirstName  string
	SecondName string
	WebName    string
	Club       int
	// Position is the FPL element type: 1=GK, 2=DEF, 3=MID, 4=FWD.
	Position int
}

// DisplayName prefers the short web name when it is actually shorter than
// the full name, which is what the FPL site itself shows.
func (f Footballer) DisplayName() string {
	full := fmt.Sprintf("%s %s", f.FirstName, f.SecondName)
	if f.WebName != "" && len(f.WebName) < len(full) {
		return f.WebName
	}
	return full
}

// Bootstrap is the bulk metadata response from the FPL API: the gameweek
// schedule and every footballer in the game.
type Bootstrap struct {
	Gameweeks   []Gameweek
	Footballers []Footballer
}

// Names returns a footballer ID to display name index.
func (b *Bootstrap) Names() map[int]string {
	names := make(map[int]string, len(b.Footballers))
	for i := range b.Footballers {
		names[b.Footballers[i].ID] = b.Footballers[i].DisplayName()
	}
	return names
}

// Clubs returns a footballer ID to club ID index, used to match footballers
// to their fixtures.
func (b *Bootstrap) Clubs() map[int]int {
	clubs := make(map[int]int, len(b.Footballers))
	for i := range b.Footballers {
		clubs[b.Footballers[i].ID] = b.Footballers[i].Club
	}
	return clubs
}

// FootballerName returns the display name for a footballer, or a generic
// placeholder when the ID isn't in the bootstrap data.
func FootballerName(names map[int]string, id int) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("Player %d", id)
}
