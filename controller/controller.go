package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/milica1221/fpl/cache"
	"github.com/milica1221/fpl/config"
	"github.com/milica1221/fpl/fpl"
	"github.com/milica1221/fpl/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// GetStandingsPage builds the full view model for the index page:
	// weekly team sums, win counts, live gameweek data and the league table.
	GetStandingsPage(ctx context.Context) (*model.StandingsPage, error)
	GetTeamDetails(ctx context.Context, entryID int) (*model.TeamDetails, error)
	GetGameweekState(ctx context.Context) (model.GameweekState, error)
	// SearchPlayers fuzzy-matches footballer names from the bootstrap data.
	SearchPlayers(ctx context.Context, query string) ([]model.Footballer, error)

	// RefreshBootstrap forces a refetch of the bootstrap data, replacing
	// whatever is cached.
	RefreshBootstrap(ctx context.Context) error
	// ClearLiveData drops the cached live points and fixtures so the next
	// page load goes back upstream. Returns the number of entries removed.
	ClearLiveData() int
	// FlushCache drops everything from the cache.
	FlushCache() int
	CacheStats() cache.Stats

	RunPeriodicBootstrapRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock clock.Clock
	cfg   *config.Config
	fpl   fpl.Client
	cache cache.Store
}

func New(clock clock.Clock, cfg *config.Config, fplClient fpl.Client, store cache.Store) (C, error) {
	c := &controller{
		clock: clock,
		cfg:   cfg,
		fpl:   fplClient,
		cache: store,
	}
	return c, nil
}

// Cache keys. The prefix before the colon must match the resource name so
// the cache can attribute misses, see cache.Store.
const (
	keyBootstrap = "bootstrap"
	keyEventInfo = "event-info"
)

func keyStandings(leagueID int) string {
	return fmt.Sprintf("standings:%d", leagueID)
}

func keyLive(event int) string {
	return fmt.Sprintf("live:%d", event)
}

func keyFixtures(event int) string {
	return fmt.Sprintf("fixtures:%d", event)
}

func keyHistory(entryID int) string {
	return fmt.Sprintf("history:%d", entryID)
}

// fetchThrough is the caching policy for every upstream read: a fresh cache
// entry short-circuits the call, otherwise the value is fetched and cached.
// When the fetch fails and an older value is still resident it is served
// instead of the error. A nil cache degrades to direct upstream calls.
func (c *controller) fetchThrough(key string, r cache.Resource, fetch func() (any, error)) (any, error) {
	var stale any
	var staleOK bool
	if c.cache != nil {
		v, fresh, ok := c.cache.Get(key)
		if ok && fresh {
			return v, nil
		}
		// A resident but expired value is kept around as the fallback.
		stale, staleOK = v, ok
	}

	v, err := fetch()
	if err != nil {
		if staleOK {
			log.Printf("upstream error for %s, serving stale copy: %v", key, err)
			return stale, nil
		}
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(key, r, v)
	}
	return v, nil
}

func (c *controller) bootstrap(ctx context.Context) (*model.Bootstrap, error) {
	v, err := c.fetchThrough(keyBootstrap, cache.ResourceBootstrap, func() (any, error) {
		return c.fpl.GetBootstrap(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Bootstrap), nil
}

func (c *controller) standings(ctx context.Context) (*model.LeagueStandings, error) {
	v, err := c.fetchThrough(keyStandings(c.cfg.LeagueID), cache.ResourceStandings, func() (any, error) {
		return c.fpl.GetLeagueStandings(ctx, c.cfg.LeagueID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.LeagueStandings), nil
}

func (c *controller) fixtures(ctx context.Context, event int) ([]model.Fixture, error) {
	v, err := c.fetchThrough(keyFixtures(event), cache.ResourceFixtures, func() (any, error) {
		return c.fpl.GetFixtures(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Fixture), nil
}

func (c *controller) history(ctx context.Context, entryID int) ([]model.GameweekResult, error) {
	v, err := c.fetchThrough(keyHistory(entryID), cache.ResourceHistory, func() (any, error) {
		return c.fpl.GetEntryHistory(ctx, entryID)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.GameweekResult), nil
}

func (c *controller) RefreshBootstrap(ctx context.Context) error {
	b, err := c.fpl.GetBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("error refreshing bootstrap data: %w", err)
	}
	if c.cache != nil {
		c.cache.Set(keyBootstrap, cache.ResourceBootstrap, b)
		c.cache.Set(keyEventInfo, cache.ResourceEventInfo, model.DeriveGameweekState(b.Gameweeks))
	}
	return nil
}

func (c *controller) ClearLiveData() int {
	if c.cache == nil {
		return 0
	}
	removed := c.cache.DeletePrefix("live:")
	removed += c.cache.DeletePrefix("fixtures:")
	return removed
}

func (c *controller) FlushCache() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Flush()
}

func (c *controller) CacheStats() cache.Stats {
	if c.cache == nil {
		return cache.Stats{}
	}
	return c.cache.Stats()
}

func (c *controller) RunPeriodicBootstrapRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := c.RefreshBootstrap(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}
