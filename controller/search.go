package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/milica1221/fpl/model"
)

// A page of search results stays readable; nobody scrolls past this.
const maxSearchResults = 25

// SearchPlayers fuzzy-matches the query against footballer display names
// from the bootstrap data, best matches first.
func (c *controller) SearchPlayers(ctx context.Context, query string) ([]model.Footballer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("error not a valid query: '%s'", query)
	}

	bootstrap, err := c.bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(bootstrap.Footballers))
	for i := range bootstrap.Footballers {
		names[i] = bootstrap.Footballers[i].DisplayName()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	results := make([]model.Footballer, 0, maxSearchResults)
	for _, r := range ranks {
		results = append(results, bootstrap.Footballers[r.OriginalIndex])
		if len(results) == maxSearchResults {
			break
		}
	}
	return results, nil
}
