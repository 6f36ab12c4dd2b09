package fpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/milica1221/fpl/model"
)

const DefaultURL = "https://fantasy.premierleague.com/api"

// Client wraps the official FPL REST API. It has its own rate limits, so
// callers are expected to go through the cache layer rather than hitting
// these methods on every page load.
type Client interface {
	GetBootstrap(ctx context.Context) (*model.Bootstrap, error)
	GetLeagueStandings(ctx context.Context, leagueID int) (*model.LeagueStandings, error)
	GetLive(ctx context.Context, event int) ([]model.ElementLive, error)
	GetFixtures(ctx context.Context, event int) ([]model.Fixture, error)
	GetEntryHistory(ctx context.Context, entryID int) ([]model.GameweekResult, error)
	GetEntryPicks(ctx context.Context, entryID, event int) (*model.Picks, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(url string) (Client, error) {
	if url == "" {
		url = DefaultURL
	}
	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	c, _ := New(url)
	return c
}

func (c *client) GetBootstrap(ctx context.Context) (*model.Bootstrap, error) {
	var parsed bootstrapResponse
	if err := c.get(ctx, fmt.Sprintf("%s/bootstrap-static/", c.url), &parsed); err != nil {
		return nil, err
	}
	return parsed.toBootstrap(), nil
}

func (c *client) GetLeagueStandings(ctx context.Context, leagueID int) (*model.LeagueStandings, error) {
	var parsed standingsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/leagues-classic/%d/standings/", c.url, leagueID), &parsed); err != nil {
		return nil, err
	}
	return parsed.toStandings(), nil
}

func (c *client) GetLive(ctx context.Context, event int) ([]model.ElementLive, error) {
	var parsed liveResponse
	if err := c.get(ctx, fmt.Sprintf("%s/event/%02d/live/", c.url, event), &parsed); err != nil {
		return nil, err
	}
	return parsed.toElements(), nil
}

func (c *client) GetFixtures(ctx context.Context, event int) ([]model.Fixture, error) {
	var parsed []fplFixture
	if err := c.get(ctx, fmt.Sprintf("%s/fixtures/?event=%d", c.url, event), &parsed); err != nil {
		return nil, err
	}
	fixtures := make([]model.Fixture, 0, len(parsed))
	for i := range parsed {
		fixtures = append(fixtures, *parsed[i].toFixture())
	}
	return fixtures, nil
}

func (c *client) GetEntryHistory(ctx context.Context, entryID int) ([]model.GameweekResult, error) {
	var parsed historyResponse
	if err := c.get(ctx, fmt.Sprintf("%s/entry/%d/history/", c.url, entryID), &parsed); err != nil {
		return nil, err
	}
	return parsed.toResults(), nil
}

func (c *client) GetEntryPicks(ctx context.Context, entryID, event int) (*model.Picks, error) {
	var parsed picksResponse
	if err := c.get(ctx, fmt.Sprintf("%s/entry/%d/event/%02d/picks/", c.url, entryID, event), &parsed); err != nil {
		return nil, err
	}
	return parsed.toPicks(entryID, event), nil
}

func (c *client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from %s: %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from FPL: %w", err)
	}
	return nil
}
