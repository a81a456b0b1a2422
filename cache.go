package arxiv

import (
	"sync"
	"time"
)

// DefaultCacheTTL is the query cache entry lifetime.
const DefaultCacheTTL = 5 * time.Minute

// QueryCache memoizes normalized result sets keyed by canonical query
// keys, so repeated loads within the TTL window skip the
// fetch+parse+normalize cycle. Eviction is TTL-only; there is no maximum
// entry count. A production-grade version should layer a bounded policy
// such as LRU on top.
//
// The clock is injectable so tests can fast-forward time.
type QueryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	papers   []*Paper
	storedAt time.Time
}

// CacheOption configures a QueryCache.
type CacheOption func(*QueryCache)

// WithClock replaces the cache's time source. For tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *QueryCache) {
		c.now = now
	}
}

// NewQueryCache creates a query cache. A non-positive ttl means
// DefaultCacheTTL.
func NewQueryCache(ttl time.Duration, opts ...CacheOption) *QueryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	c := &QueryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached result set for key, or false if the key is
// absent or its entry has expired. An expired entry is removed on the
// spot.
func (c *QueryCache) Get(key string) ([]*Paper, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.papers, true
}

// Put stores a result set for key, replacing any previous entry.
// Get and Put are not transactionally linked: on a miss the caller
// re-fetches and then calls Put; the cache itself never fetches.
func (c *QueryCache) Put(key string, papers []*Paper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{papers: papers, storedAt: c.now()}
}

// InvalidateAll drops every cached entry.
func (c *QueryCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of stored entries, including any not yet
// evicted expired ones.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
