package cache

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultTTL is the maximum age of a cached response.
const DefaultTTL = 5 * time.Minute

// DefaultSize bounds the number of cached responses.
const DefaultSize = 512

// entry is a cached value together with the time it was stored.
type entry struct {
	value    []byte
	storedAt time.Time
}

// TTLCache caches raw response bodies for idempotent reads.
// Get never returns an entry older than the TTL.
type TTLCache struct {
	mu    sync.Mutex
	store *lru.Cache[string, entry]
	ttl   time.Duration
	now   func() time.Time
	gen   uint64 // bumped by Clear

	hits   atomic.Int64
	misses atomic.Int64
}

// Option configures a TTLCache.
type Option func(*TTLCache)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *TTLCache) { c.now = now }
}

// New creates a TTLCache holding at most size entries for ttl each.
// Non-positive values fall back to DefaultSize and DefaultTTL.
func New(ttl time.Duration, size int, opts ...Option) (*TTLCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if size <= 0 {
		size = DefaultSize
	}
	store, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache store: %w", err)
	}
	c := &TTLCache{store: store, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Key formats the cache key for a request, e.g. "GET:/currencies".
func Key(method, path string) string {
	return strings.ToUpper(method) + ":" + path
}

// Set stores value under key, stamped with the current time.
func (c *TTLCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Add(key, entry{value: value, storedAt: c.now()})
}

// Generation identifies the current cache contents; every Clear changes it.
func (c *TTLCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// SetIfGeneration stores value only if no Clear ran since gen was read.
// It reports whether the value was stored.
func (c *TTLCache) SetIfGeneration(key string, value []byte, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.store.Add(key, entry{value: value, storedAt: c.now()})
	return true
}

// Get returns the value for key if it is at most TTL old.
// An expired entry is evicted and reported as a miss.
func (c *TTLCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.store.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		c.store.Remove(key)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return e.value, true
}

// Clear evicts every entry.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.store.Purge()
}

// Len returns the number of stored entries, expired ones included until they are read.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Stats is a point-in-time hit/miss count.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// Stats returns the cache counters.
func (c *TTLCache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load(), Size: c.Len()}
}
