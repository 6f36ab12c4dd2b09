// Package cache is a small in-memory key-value store with fixed per-resource
// expirations and LRU eviction. It sits between the controller and the FPL
// API to keep the page snappy and to stay inside the API's rate limits.
package cache

import "time"

// Resource classifies a cache key. Every resource type has a fixed TTL.
type Resource string

const (
	ResourceBootstrap Resource = "bootstrap"
	ResourceEventInfo Resource = "event-info"
	ResourceStandings Resource = "standings"
	ResourceLive      Resource = "live"
	ResourceLiveFinal Resource = "live-final"
	ResourceFixtures  Resource = "fixtures"
	ResourceHistory   Resource = "history"
)

// ttls is the expiration schedule. Live points for a finished gameweek can
// be held much longer than for one that is still being played.
var ttls = map[Resource]time.Duration{
	ResourceBootstrap: 1 * time.Hour,
	ResourceEventInfo: 30 * time.Minute,
	ResourceStandings: 10 * time.Minute,
	ResourceLive:      5 * time.Minute,
	ResourceLiveFinal: 2 * time.Hour,
	ResourceFixtures:  10 * time.Minute,
	ResourceHistory:   30 * time.Minute,
}

// TTL returns the expiration for a resource type. Unknown resources get the
// shortest TTL in the schedule.
func TTL(r Resource) time.Duration {
	if d, ok := ttls[r]; ok {
		return d
	}
	return 5 * time.Minute
}

// Store is the cache contract handed to the controller. Get reports both
// whether a value is resident and whether it is still fresh; expired values
// stay resident until evicted so they can be served when the upstream API
// is down.
type Store interface {
	Get(key string) (value any, fresh bool, ok bool)
	Set(key string, r Resource, value any)
	Delete(key string)
	// DeletePrefix removes every key with the given prefix and returns how
	// many were removed.
	DeletePrefix(prefix string) int
	// Flush removes everything and returns how many entries were removed.
	Flush() int
	Len() int
	Stats() Stats
}

// ResourceStats is the hit/miss breakdown for a single resource type.
type ResourceStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

// Stats is a snapshot of the cache counters. A stale hit is a Get that found
// a resident but expired entry; it also counts as a miss because the caller
// is expected to go upstream.
type Stats struct {
	Hits      uint64                     `json:"hits"`
	Misses    uint64                     `json:"misses"`
	StaleHits uint64                     `json:"stale_hits"`
	Sets      uint64                     `json:"sets"`
	Evictions uint64                     `json:"evictions"`
	Size      int                        `json:"size"`
	Capacity  int                        `json:"capacity"`
	Resources map[Resource]ResourceStats `json:"resources"`
}
