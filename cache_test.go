package arxiv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestQueryCacheHitWithinTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewQueryCache(5*time.Minute, WithClock(clock.now))

	papers := []*Paper{testPaper("Jane Doe")}
	cache.Put("k", papers)

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, papers, got)

	// Second get within the TTL window returns the identical value with
	// no intervening put.
	clock.advance(4 * time.Minute)
	again, ok := cache.Get("k")
	require.True(t, ok)
	assert.Same(t, got[0], again[0])
}

func TestQueryCacheExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewQueryCache(5*time.Minute, WithClock(clock.now))

	cache.Put("k", []*Paper{testPaper("Jane Doe")})

	clock.advance(5 * time.Minute)
	_, ok := cache.Get("k")
	assert.False(t, ok, "entry at the TTL boundary is expired")
	assert.Equal(t, 0, cache.Len(), "expired entry removed on get")

	// Refresh: exactly one put restores the key.
	cache.Put("k", []*Paper{testPaper("John Smith")})
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "John Smith", got[0].Authors[0].Name)
}

func TestQueryCacheMiss(t *testing.T) {
	cache := NewQueryCache(0)
	_, ok := cache.Get("absent")
	assert.False(t, ok)
}

func TestQueryCacheInvalidateAll(t *testing.T) {
	cache := NewQueryCache(time.Minute)
	cache.Put("a", nil)
	cache.Put("b", nil)
	require.Equal(t, 2, cache.Len())

	cache.InvalidateAll()
	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
}

func TestQueryCachePutReplaces(t *testing.T) {
	cache := NewQueryCache(time.Minute)
	cache.Put("k", []*Paper{testPaper("Jane Doe")})
	cache.Put("k", []*Paper{testPaper("John Smith")})

	got, ok := cache.Get("k")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "John Smith", got[0].Authors[0].Name)
}
