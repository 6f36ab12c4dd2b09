package fpl

import "github.com/milica1221/fpl/model"

// Wire types for the FPL API responses. Only the fields the tabela needs
// are decoded, everything else in the payloads is ignored.

type bootstrapResponse struct {
	Events   []fplEvent   `json:"events"`
	Elements []fplElement `json:"elements"`
}

type fplEvent struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
	Finished  bool   `json:"finished"`
}

type fplElement struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	WebName     string `json:"web_name"`
	Team        int    `json:"team"`
	ElementType int    `json:"element_type"`
}

func (r *bootstrapResponse) toBootstrap() *model.Bootstrap {
	b := &model.Bootstrap{
		Gameweeks:   make([]model.Gameweek, 0, len(r.Events)),
		Footballers: make([]model.Footballer, 0, len(r.Elements)),
	}
	for _, e := range r.Events {
		b.Gameweeks = append(b.Gameweeks, model.Gameweek{
			ID:        e.ID,
			Name:      e.Name,
			IsCurrent: e.IsCurrent,
			Finished:  e.Finished,
		})
	}
	for _, e := range r.Elements {
		b.Footballers = append(b.Footballers, model.Footballer{
			ID:         e.ID,
			FirstName:  e.FirstName,
			SecondName: e.SecondName,
			WebName:    e.WebName,
			Club:       e.Team,
			Position:   e.ElementType,
		})
	}
	return b
}

type standingsResponse struct {
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Standings struct {
		Results []standingsEntry `json:"results"`
	} `json:"standings"`
}

type standingsEntry struct {
	Entry      int    `json:"entry"`
	EntryName  string `json:"entry_name"`
	PlayerName string `json:"player_name"`
	Total      int    `json:"total"`
}

func (r *standingsResponse) toStandings() *model.LeagueStandings {
	s := &model.LeagueStandings{
		LeagueName: r.League.Name,
		Entries:    make([]model.LeagueEntry, 0, len(r.Standings.Results)),
	}
	if s.LeagueName == "" {
		s.LeagueName = "League"
	}
	for _, e := range r.Standings.Results {
		s.Entries = append(s.Entries, model.LeagueEntry{
			EntryID:    e.Entry,
			EntryName:  e.EntryName,
			PlayerName: e.PlayerName,
			Total:      e.Total,
		})
	}
	return s
}

type liveResponse struct {
	Elements []liveElement `json:"elements"`
}

type liveElement struct {
	ID    int `json:"id"`
	Stats struct {
		Minutes     int `json:"minutes"`
		TotalPoints int `json:"total_points"`
		Bonus       int `json:"bonus"`
	} `json:"stats"`
}

func (r *liveResponse) toElements() []model.ElementLive {
	elements := make([]model.ElementLive, 0, len(r.Elements))
	for _, e := range r.Elements {
		elements = append(elements, model.ElementLive{
			ID:          e.ID,
			Minutes:     e.Stats.Minutes,
			Bonus:       e.Stats.Bonus,
			TotalPoints: e.Stats.TotalPoints,
		})
	}
	return elements
}

type fplFixture struct {
	Event               int              `json:"event"`
	TeamH               int              `json:"team_h"`
	TeamA               int              `json:"team_a"`
	Started             bool             `json:"started"`
	Finished            bool             `json:"finished"`
	FinishedProvisional bool             `json:"finished_provisional"`
	Minutes             int              `json:"minutes"`
	Stats               []fplFixtureStat `json:"stats"`
}

type fplFixtureStat struct {
	Identifier string         `json:"identifier"`
	Home       []fplStatValue `json:"h"`
	Away       []fplStatValue `json:"a"`
}

type fplStatValue struct {
	Element int `json:"element"`
	Value   int `json:"value"`
}

func (f *fplFixture) toFixture() *model.Fixture {
	fixture := &model.Fixture{
		Event:               f.Event,
		HomeClub:            f.TeamH,
		AwayClub:            f.TeamA,
		Started:             f.Started,
		Finished:            f.Finished,
		FinishedProvisional: f.FinishedProvisional,
		Minutes:             f.Minutes,
		Stats:               make([]model.FixtureStat, 0, len(f.Stats)),
	}
	for _, s := range f.Stats {
		stat := model.FixtureStat{
			Identifier: s.Identifier,
			Home:       make([]model.StatValue, 0, len(s.Home)),
			Away:       make([]model.StatValue, 0, len(s.Away)),
		}
		for _, v := range s.Home {
			stat.Home = append(stat.Home, model.StatValue{Element: v.Element, Value: v.Value})
		}
		for _, v := range s.Away {
			stat.Away = append(stat.Away, model.StatValue{Element: v.Element, Value: v.Value})
		}
		fixture.Stats = append(fixture.Stats, stat)
	}
	return fixture
}

type historyResponse struct {
	Current []historyEntry `json:"current"`
}

type historyEntry struct {
	Event              int `json:"event"`
	Points             int `json:"points"`
	EventTransfersCost int `json:"event_transfers_cost"`
}

func (r *historyResponse) toResults() []model.GameweekResult {
	results := make([]model.GameweekResult, 0, len(r.Current))
	for _, e := range r.Current {
		results = append(results, model.GameweekResult{
			Event:         e.Event,
			Points:        e.Points,
			TransfersCost: e.EventTransfersCost,
		})
	}
	return results
}

type picksResponse struct {
	ActiveChip   *string     `json:"active_chip"`
	Picks        []pickEntry `json:"picks"`
	EntryHistory struct {
		EventTransfersCost int `json:"event_transfers_cost"`
	} `json:"entry_history"`
}

type pickEntry struct {
	Element       int  `json:"element"`
	Position      int  `json:"position"`
	Multiplier    int  `json:"multiplier"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
}

func (r *picksResponse) toPicks(entryID, event int) *model.Picks {
	p := &model.Picks{
		EntryID:       entryID,
		Event:         event,
		Picks:         make([]model.Pick, 0, len(r.Picks)),
		TransfersCost: r.EntryHistory.EventTransfersCost,
	}
	if r.ActiveChip != nil {
		p.ActiveChip = *r.ActiveChip
	}
	for _, e := range r.Picks {
		p.Picks = append(p.Picks, model.Pick{
			Element:       e.Element,
			Position:      e.Position,
			Multiplier:    e.Multiplier,
			IsCaptain:     e.IsCaptain,
			IsViceCaptain: e.IsViceCaptain,
		})
	}
	return p
}
