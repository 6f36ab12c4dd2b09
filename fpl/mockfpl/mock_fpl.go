package mockfpl

import (
	"context"

	"github.com/milica1221/fpl/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetBootstrap(ctx context.Context) (*model.Bootstrap, error) {
	args := c.Called(ctx)

	var res *model.Bootstrap
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Bootstrap)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeagueStandings(ctx context.Context, leagueID int) (*model.LeagueStandings, error) {
	args := c.Called(ctx, leagueID)

	var res *model.LeagueStandings
	if args.Get(0) != nil {
		res = args.Get(0).(*model.LeagueStandings)
	}

	return res, args.Error(1)
}

func (c *Client) GetLive(ctx context.Context, event int) ([]model.ElementLive, error) {
	args := c.Called(ctx, event)

	var res []model.ElementLive
	if args.Get(0) != nil {
		res = args.Get(0).([]model.ElementLive)
	}

	return res, args.Error(1)
}

func (c *Client) GetFixtures(ctx context.Context, event int) ([]model.Fixture, error) {
	args := c.Called(ctx, event)

	var res []model.Fixture
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Fixture)
	}

	return res, args.Error(1)
}

func (c *Client) GetEntryHistory(ctx context.Context, entryID int) ([]model.GameweekResult, error) {
	args := c.Called(ctx, entryID)

	var res []model.GameweekResult
	if args.Get(0) != nil {
		res = args.Get(0).([]model.GameweekResult)
	}

	return res, args.Error(1)
}

func (c *Client) GetEntryPicks(ctx context.Context, entryID, event int) (*model.Picks, error) {
	args := c.Called(ctx, entryID, event)

	var res *model.Picks
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Picks)
	}

	return res, args.Error(1)
}
