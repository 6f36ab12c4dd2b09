package controller

import (
	"context"

	"github.com/milica1221/fpl/model"
)

// GetTeamDetails breaks down a single entry's squad for the current
// gameweek: the starting XI with multiplier-adjusted points and the bench
// with base points.
func (c *controller) GetTeamDetails(ctx context.Context, entryID int) (*model.TeamDetails, error) {
	state, err := c.GetGameweekState(ctx)
	if err != nil {
		return nil, err
	}

	bootstrap, err := c.bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	names := bootstrap.Names()

	points, err := c.livePoints(ctx, state.Current, state.IsFinished())
	if err != nil {
		return nil, err
	}

	picks, err := c.fpl.GetEntryPicks(ctx, entryID, state.Current)
	if err != nil {
		return nil, err
	}

	details := &model.TeamDetails{
		EntryID:    entryID,
		ActiveChip: picks.ActiveChip,
	}
	for _, p := range picks.Picks {
		base := points[p.Element]
		detail := model.PickDetail{
			Name:          model.FootballerName(names, p.Element),
			Multiplier:    p.Multiplier,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
		}
		if p.Benched() {
			detail.Points = base
			details.Bench = append(details.Bench, detail)
			details.BenchPoints += base
		} else {
			detail.Points = base * p.Multiplier
			details.StartingXI = append(details.StartingXI, detail)
			details.TotalPoints += detail.Points
		}
	}
	return details, nil
}
