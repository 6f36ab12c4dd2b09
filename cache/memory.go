package cache

import (
	"container/list"
	"strings"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

// New creates an in-memory Store that holds at most capacity entries,
// evicting the least-recently-used entry when full. The clock is injected
// so expiration is testable.
func New(capacity int, clk clock.Clock) Store {
	return &memoryStore{
		clock:    clk,
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
		perRes:   make(map[Resource]*ResourceStats),
	}
}

type entry struct {
	key      string
	resource Resource
	value    any
	expires  time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expires)
}

type memoryStore struct {
	mu       sync.Mutex
	clock    clock.Clock
	capacity int

	// order holds *entry values, most recently used at the front.
	order *list.List
	items map[string]*list.Element

	hits      uint64
	misses    uint64
	staleHits uint64
	sets      uint64
	evictions uint64
	perRes    map[Resource]*ResourceStats
}

func (s *memoryStore) Get(key string) (any, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.items[key]
	if !ok {
		s.misses++
		s.resStats(resourceFromKey(key)).Misses++
		metricMisses.WithLabelValues(string(resourceFromKey(key))).Inc()
		return nil, false, false
	}

	s.order.MoveToFront(el)
	e := el.Value.(*entry)

	if e.expired(s.clock.Now()) {
		// Resident but stale. Counts as a miss because the caller is
		// expected to refetch; the value is still returned for fallback use.
		s.misses++
		s.staleHits++
		s.resStats(e.resource).Misses++
		metricMisses.WithLabelValues(string(e.resource)).Inc()
		metricStaleHits.Inc()
		return e.value, false, true
	}

	s.hits++
	s.resStats(e.resource).Hits++
	metricHits.WithLabelValues(string(e.resource)).Inc()
	return e.value, true, true
}

func (s *memoryStore) Set(key string, r Resource, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expires := s.clock.Now().Add(TTL(r))

	if el, ok := s.items[key]; ok {
		e := el.Value.(*entry)
		e.resource = r
		e.value = value
		e.expires = expires
		s.order.MoveToFront(el)
	} else {
		if s.capacity > 0 && s.order.Len() >= s.capacity {
			s.evictOldest()
		}
		el := s.order.PushFront(&entry{key: key, resource: r, value: value, expires: expires})
		s.items[key] = el
	}

	s.sets++
	metricSets.Inc()
	metricSize.Set(float64(s.order.Len()))
}

// evictOldest removes the entry at the back of the LRU list. Callers must
// hold the lock.
func (s *memoryStore) evictOldest() {
	el := s.order.Back()
	if el == nil {
		return
	}
	e := el.Value.(*entry)
	s.order.Remove(el)
	delete(s.items, e.key)
	s.evictions++
	metricEvictions.Inc()
}

func (s *memoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.items[key]; ok {
		s.order.Remove(el)
		delete(s.items, key)
	}
	metricSize.Set(float64(s.order.Len()))
}

func (s *memoryStore) DeletePrefix(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, el := range s.items {
		if strings.HasPrefix(key, prefix) {
			s.order.Remove(el)
			delete(s.items, key)
			removed++
		}
	}
	metricSize.Set(float64(s.order.Len()))
	return removed
}

func (s *memoryStore) Flush() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.order.Len()
	s.order.Init()
	s.items = make(map[string]*list.Element)
	metricSize.Set(0)
	return removed
}

func (s *memoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

func (s *memoryStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	resources := make(map[Resource]ResourceStats, len(s.perRes))
	for r, rs := range s.perRes {
		resources[r] = *rs
	}
	return Stats{
		Hits:      s.hits,
		Misses:    s.misses,
		StaleHits: s.staleHits,
		Sets:      s.sets,
		Evictions: s.evictions,
		Size:      s.order.Len(),
		Capacity:  s.capacity,
		Resources: resources,
	}
}

func (s *memoryStore) resStats(r Resource) *ResourceStats {
	rs, ok := s.perRes[r]
	if !ok {
		rs = &ResourceStats{}
		s.perRes[r] = rs
	}
	return rs
}

// resourceFromKey recovers the resource type from a key for miss accounting
// when the key isn't resident. Keys are named "<resource>" or
// "<resource>:<suffix>".
func resourceFromKey(key string) Resource {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return Resource(key[:i])
	}
	return Resource(key)
}
