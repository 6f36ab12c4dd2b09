package controller

import (
	"context"
	"log"
	"sort"

	"github.com/milica1221/fpl/model"
)

func (c *controller) GetStandingsPage(ctx context.Context) (*model.StandingsPage, error) {
	state, err := c.GetGameweekState(ctx)
	if err != nil {
		return nil, err
	}

	bootstrap, err := c.bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	names := bootstrap.Names()
	clubs := bootstrap.Clubs()

	standings, err := c.standings(ctx)
	if err != nil {
		return nil, err
	}

	points, err := c.livePoints(ctx, state.Current, state.IsFinished())
	if err != nil {
		return nil, err
	}

	fixtures, err := c.fixtures(ctx, state.Current)
	if err != nil {
		return nil, err
	}

	// Picks change every week and are keyed per entry, so they are fetched
	// directly. An entry whose picks can't be loaded still gets a row, just
	// with zero live points.
	picks := make(map[int]*model.Picks, len(standings.Entries))
	for _, id := range standings.EntryIDs() {
		p, err := c.fpl.GetEntryPicks(ctx, id, state.Current)
		if err != nil {
			log.Printf("error fetching picks for entry %d: %v", id, err)
			continue
		}
		picks[id] = p
	}

	liveByEntry := make(map[int]*model.EntryLive, len(standings.Entries))
	leagueLive := make([]model.LeagueLiveRow, 0, len(standings.Entries))
	for _, e := range standings.Entries {
		live := entryLive(e.EntryID, c.cfg.EntryName(e.EntryID), state.Current, picks[e.EntryID], points, names)
		liveByEntry[e.EntryID] = live

		waiting, playing := playersToPlay(picks[e.EntryID], names, clubs, fixtures)
		leagueLive = append(leagueLive, model.LeagueLiveRow{
			LeagueEntry: e,
			LivePoints:  live.GameweekPoints,
			Captain:     captainInfo(picks[e.EntryID], points, names, clubs, fixtures),
			Waiting:     waiting,
			Playing:     playing,
		})
	}
	sort.SliceStable(leagueLive, func(i, j int) bool {
		return leagueLive[i].LivePoints > leagueLive[j].LivePoints
	})

	team1 := c.teamView(ctx, c.cfg.Team1Name, c.cfg.Team1Entries, state, liveByEntry)
	team2 := c.teamView(ctx, c.cfg.Team2Name, c.cfg.Team2Entries, state, liveByEntry)

	team1.Wins, team2.Wins = countWins(team1.Sums, team2.Sums)
	team1.Total = sumAll(team1.Sums)
	team2.Total = sumAll(team2.Sums)

	page := &model.StandingsPage{
		LeagueName: standings.LeagueName,
		State:      state,
		HasData:    hasData(team1.Entries) || hasData(team2.Entries),
		Team1:      *team1,
		Team2:      *team2,
		Rows:       weekRows(team1.Sums, team2.Sums),
		LeagueLive: leagueLive,
	}
	return page, nil
}

// teamView assembles one team's side of the tabela: each entry's season
// scores with the current gameweek overridden by live points, the per-week
// sums, and the live summaries sorted best first.
func (c *controller) teamView(ctx context.Context, name string, entryIDs []int, state model.GameweekState, liveByEntry map[int]*model.EntryLive) *model.TeamView {
	view := &model.TeamView{
		Name:    name,
		Entries: make([]model.EntrySeason, 0, len(entryIDs)),
		Sums:    make(map[int]int),
	}

	for _, id := range entryIDs {
		season := model.EntrySeason{
			EntryID:      id,
			Name:         c.cfg.EntryName(id),
			ScoresByWeek: make(map[int]int),
		}

		results, err := c.history(ctx, id)
		if err != nil {
			// The live points below may still fill in the current week.
			log.Printf("error fetching history for entry %d: %v", id, err)
		}
		for _, r := range results {
			season.ScoresByWeek[r.Event] = r.NetPoints()
		}

		// Keep the current week fresher than the 30 minute history TTL.
		if live, ok := liveByEntry[id]; ok {
			season.ScoresByWeek[state.Current] = live.GameweekPoints
			live.SeasonTotal = season.SeasonTotal()
			view.Live = append(view.Live, *live)
		}

		for week, points := range season.ScoresByWeek {
			view.Sums[week] += points
		}
		view.Entries = append(view.Entries, season)
	}

	sort.SliceStable(view.Live, func(i, j int) bool {
		return view.Live[i].GameweekPoints > view.Live[j].GameweekPoints
	})
	return view
}

// countWins compares the weekly sums of the two teams. The team with the
// strictly greater sum takes the week, equal weeks go to neither.
func countWins(team1, team2 map[int]int) (int, int) {
	wins1, wins2 := 0, 0
	for week := model.FirstWeek; week <= model.LastWeek; week++ {
		s1, ok1 := team1[week]
		s2, ok2 := team2[week]
		if !ok1 && !ok2 {
			continue
		}
		switch {
		case s1 > s2:
			wins1++
		case s2 > s1:
			wins2++
		}
	}
	return wins1, wins2
}

func sumAll(sums map[int]int) int {
	total := 0
	for _, points := range sums {
		total += points
	}
	return total
}

func hasData(entries []model.EntrySeason) bool {
	for i := range entries {
		if entries[i].HasScores() {
			return true
		}
	}
	return false
}

// weekRows flattens both teams' sums into template-friendly rows, oldest
// week first.
func weekRows(team1, team2 map[int]int) []model.WeekRow {
	rows := make([]model.WeekRow, 0, len(team1))
	for week := model.FirstWeek; week <= model.LastWeek; week++ {
		_, ok1 := team1[week]
		_, ok2 := team2[week]
		if !ok1 && !ok2 {
			continue
		}
		rows = append(rows, model.WeekRow{Week: week, Team1: team1[week], Team2: team2[week]})
	}
	return rows
}
