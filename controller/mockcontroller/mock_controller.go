package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/milica1221/fpl/cache"
	"github.com/milica1221/fpl/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetStandingsPage(ctx context.Context) (*model.StandingsPage, error) {
	args := c.Called(ctx)

	var res *model.StandingsPage
	if args.Get(0) != nil {
		res = args.Get(0).(*model.StandingsPage)
	}

	return res, args.Error(1)
}

func (c *C) GetTeamDetails(ctx context.Context, entryID int) (*model.TeamDetails, error) {
	args := c.Called(ctx, entryID)

	var res *model.TeamDetails
	if args.Get(0) != nil {
		res = args.Get(0).(*model.TeamDetails)
	}

	return res, args.Error(1)
}

func (c *C) GetGameweekState(ctx context.Context) (model.GameweekState, error) {
	args := c.Called(ctx)
	return args.Get(0).(model.GameweekState), args.Error(1)
}

func (c *C) SearchPlayers(ctx context.Context, query string) ([]model.Footballer, error) {
	args := c.Called(ctx, query)

	var res []model.Footballer
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Footballer)
	}

	return res, args.Error(1)
}

func (c *C) RefreshBootstrap(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) ClearLiveData() int {
	args := c.Called()
	return args.Int(0)
}

func (c *C) FlushCache() int {
	args := c.Called()
	return args.Int(0)
}

func (c *C) CacheStats() cache.Stats {
	args := c.Called()
	return args.Get(0).(cache.Stats)
}

func (c *C) RunPeriodicBootstrapRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
