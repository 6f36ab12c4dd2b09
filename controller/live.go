package controller

import (
	"context"
	"sort"

	"github.com/milica1221/fpl/cache"
	"github.com/milica1221/fpl/model"
)

// livePoints returns the points for every footballer in the given gameweek,
// keyed by element ID. For footballers whose match is settled the official
// total is used. While a match is running the API's bonus points lag behind,
// so the official bonus is stripped and replaced with one provisionally
// calculated from the BPS standings.
//
// The result is cached much longer once the gameweek is finished.
func (c *controller) livePoints(ctx context.Context, event int, final bool) (map[int]int, error) {
	resource := cache.ResourceLive
	if final {
		resource = cache.ResourceLiveFinal
	}

	v, err := c.fetchThrough(keyLive(event), resource, func() (any, error) {
		elements, err := c.fpl.GetLive(ctx, event)
		if err != nil {
			return nil, err
		}
		fixtures, err := c.fixtures(ctx, event)
		if err != nil {
			return nil, err
		}

		byElement := fixtureByElement(fixtures)
		bonus := provisionalBonus(fixtures)

		points := make(map[int]int, len(elements))
		for _, e := range elements {
			f := byElement[e.ID]
			if f != nil && f.Settled() {
				points[e.ID] = e.TotalPoints
			} else {
				points[e.ID] = e.TotalPoints - e.Bonus + bonus[e.ID]
			}
		}
		return points, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[int]int), nil
}

// fixtureByElement maps every footballer that appears in a fixture's BPS
// stats to that fixture.
func fixtureByElement(fixtures []model.Fixture) map[int]*model.Fixture {
	byElement := make(map[int]*model.Fixture)
	for i := range fixtures {
		stat := fixtures[i].Stat(model.StatBPS)
		if stat == nil {
			continue
		}
		for _, v := range stat.Home {
			byElement[v.Element] = &fixtures[i]
		}
		for _, v := range stat.Away {
			byElement[v.Element] = &fixtures[i]
		}
	}
	return byElement
}

// provisionalBonus awards 3/2/1 bonus points from the live BPS standings of
// every fixture that has started but isn't settled yet, following the FPL
// tie rules: a two-way tie for first place pays 3 points to both and 1 to
// the next best, a three-way tie pays only the 3s, and so on down.
func provisionalBonus(fixtures []model.Fixture) map[int]int {
	bonus := make(map[int]int)

	for i := range fixtures {
		f := &fixtures[i]
		if !f.Started || f.Settled() {
			continue
		}

		stat := f.Stat(model.StatBPS)
		if stat == nil {
			continue
		}

		// Group element IDs by their BPS score, zeros excluded.
		groups := make(map[int][]int)
		for _, v := range append(append([]model.StatValue{}, stat.Home...), stat.Away...) {
			if v.Value > 0 {
				groups[v.Value] = append(groups[v.Value], v.Element)
			}
		}
		if len(groups) == 0 {
			continue
		}

		scores := make([]int, 0, len(groups))
		for s := range groups {
			scores = append(scores, s)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(scores)))

		awarded := 0
	fixture:
		for idx, score := range scores {
			tied := groups[score]

			switch awarded {
			case 0:
				switch len(tied) {
				case 1:
					bonus[tied[0]] += 3
					awarded = 1
				case 2:
					// Both get 3, the next best gets the 1.
					bonus[tied[0]] += 3
					bonus[tied[1]] += 3
					if idx+1 < len(scores) {
						bonus[groups[scores[idx+1]][0]] += 1
					}
					break fixture
				default:
					for _, id := range tied {
						bonus[id] += 3
					}
					break fixture
				}
			case 1:
				for _, id := range tied {
					bonus[id] += 2
				}
				if len(tied) > 1 {
					break fixture
				}
				awarded = 2
			case 2:
				for _, id := range tied {
					bonus[id] += 1
				}
				break fixture
			}
		}
	}

	return bonus
}

// entryLive summarizes a single entry's gameweek from its picks and the
// per-footballer points: the total, what was left on the bench, and the
// best and worst performing starters.
func entryLive(entryID int, name string, event int, picks *model.Picks, points map[int]int, names map[int]string) *model.EntryLive {
	live := &model.EntryLive{
		EntryID: entryID,
		Name:    name,
		Event:   event,
	}
	if picks == nil {
		live.Best = []model.PlayerPoints{{Name: "N/A"}}
		live.Worst = []model.PlayerPoints{{Name: "N/A"}}
		return live
	}

	live.TransfersCost = picks.TransfersCost

	var starters []model.PlayerPoints
	for _, p := range picks.Picks {
		base := points[p.Element]
		if p.Benched() {
			live.BenchPoints += base
			continue
		}

		scored := base * p.Multiplier
		live.GameweekPoints += scored
		if p.IsCaptain {
			live.CaptainPoints = scored
		}
		starters = append(starters, model.PlayerPoints{
			Name:   model.FootballerName(names, p.Element),
			Points: scored,
		})
	}

	live.Best, live.Worst = bestAndWorst(starters)
	return live
}

// bestAndWorst picks out every starter tied for the highest score, and every
// starter tied for the lowest score among those who actually scored.
func bestAndWorst(starters []model.PlayerPoints) (best, worst []model.PlayerPoints) {
	if len(starters) == 0 {
		return []model.PlayerPoints{{Name: "N/A"}}, []model.PlayerPoints{{Name: "N/A"}}
	}

	max := starters[0].Points
	for _, s := range starters[1:] {
		if s.Points > max {
			max = s.Points
		}
	}
	for _, s := range starters {
		if s.Points == max {
			best = append(best, s)
		}
	}

	min := 0
	for _, s := range starters {
		if s.Points > 0 && (min == 0 || s.Points < min) {
			min = s.Points
		}
	}
	if min == 0 {
		// Nobody has scored yet.
		return best, []model.PlayerPoints{{Name: "N/A"}}
	}
	for _, s := range starters {
		if s.Points == min {
			worst = append(worst, s)
		}
	}
	return best, worst
}

// captainInfo reports the captain's doubled points and whether their match
// has been played. The points stay at zero until the match kicks off.
func captainInfo(picks *model.Picks, points map[int]int, names map[int]string, clubs map[int]int, fixtures []model.Fixture) *model.CaptainInfo {
	if picks == nil {
		return nil
	}
	captain := picks.Captain()
	if captain == nil {
		return nil
	}

	info := &model.CaptainInfo{
		Name: model.FootballerName(names, captain.Element),
	}

	switch model.ClubStatuses(fixtures)[clubs[captain.Element]] {
	case model.StatusFinished:
		info.Played = true
		info.Points = points[captain.Element] * 2
	case model.StatusLive:
		info.IsPlaying = true
		info.Points = points[captain.Element] * 2
	}
	return info
}

// playersToPlay splits an entry's starters whose matches aren't finished
// into those waiting for kickoff and those currently on the pitch.
func playersToPlay(picks *model.Picks, names map[int]string, clubs map[int]int, fixtures []model.Fixture) (waiting, playing []model.PlayerState) {
	if picks == nil {
		return nil, nil
	}

	statuses := model.ClubStatuses(fixtures)
	for _, p := range picks.Picks {
		if p.Benched() {
			continue
		}

		status, ok := statuses[clubs[p.Element]]
		if !ok {
			status = model.StatusNotStarted
		}
		if status == model.StatusFinished {
			continue
		}

		state := model.PlayerState{
			Name:          model.FootballerName(names, p.Element),
			Status:        status,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
			Multiplier:    p.Multiplier,
		}
		if status == model.StatusLive {
			playing = append(playing, state)
		} else {
			waiting = append(waiting, state)
		}
	}
	return waiting, playing
}
