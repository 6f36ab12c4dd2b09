package controller

import (
	"context"

	"github.com/milica1221/fpl/cache"
	"github.com/milica1221/fpl/model"
)

// GetGameweekState reports the current gameweek and whether it is live.
// The derived state is cached separately from the bootstrap data because it
// goes stale faster around kickoff times.
func (c *controller) GetGameweekState(ctx context.Context) (model.GameweekState, error) {
	v, err := c.fetchThrough(keyEventInfo, cache.ResourceEventInfo, func() (any, error) {
		b, err := c.bootstrap(ctx)
		if err != nil {
			return nil, err
		}
		return model.DeriveGameweekState(b.Gameweeks), nil
	})
	if err != nil {
		return model.GameweekState{}, err
	}
	return v.(model.GameweekState), nil
}
