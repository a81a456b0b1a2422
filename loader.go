package arxiv

import (
	"context"
	"sync"
)

// Searcher is the fetch collaborator consumed by Loader. *Client
// implements it.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]*Paper, error)
}

// Loader is the load-a-result-set entry point: it answers queries from
// the QueryCache when possible and otherwise fetches through the Searcher
// and stores the result.
//
// Loads for different query keys are independent. Concurrent loads for
// the same key race on the fetch, so each load is issued a monotonically
// increasing token per key; a load whose token is no longer the latest
// when its fetch resolves discards its result and returns ErrStale
// instead of overwriting a newer one. This is cancellation by staleness,
// not preemptive cancellation: the superseded fetch still runs to
// completion.
type Loader struct {
	searcher Searcher
	cache    *QueryCache

	mu     sync.Mutex
	tokens map[string]uint64
}

// NewLoader creates a Loader. If cache is nil a default-TTL cache is
// created.
func NewLoader(s Searcher, cache *QueryCache) *Loader {
	if cache == nil {
		cache = NewQueryCache(DefaultCacheTTL)
	}
	return &Loader{
		searcher: s,
		cache:    cache,
		tokens:   make(map[string]uint64),
	}
}

// Cache returns the loader's query cache.
func (l *Loader) Cache() *QueryCache {
	return l.cache
}

// Load returns the result set for q, from cache when fresh. On a miss it
// fetches, stores, and returns the new result. If a newer Load for the
// same key was issued while the fetch was in flight, the stale result is
// discarded and ErrStale is returned.
func (l *Loader) Load(ctx context.Context, q Query) ([]*Paper, error) {
	key := q.Key()

	if papers, ok := l.cache.Get(key); ok {
		return papers, nil
	}

	token := l.issue(key)

	papers, err := l.searcher.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	// The token check and the cache write share one critical section so
	// two near-simultaneous fetches cannot interleave their writes.
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tokens[key] != token {
		return nil, ErrStale
	}
	l.cache.Put(key, papers)
	return papers, nil
}

func (l *Loader) issue(key string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[key]++
	return l.tokens[key]
}
