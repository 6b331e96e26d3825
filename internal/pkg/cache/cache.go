package cache

import (
	"sync"
	"time"
)

// TTLCache is a small in-memory lookup cache with a bounded entry lifetime.
// It shields the durable store from repeated reads during high-frequency
// events such as driver location ticks. Entries are never authoritative;
// callers fall back to the source of truth on a miss.
type TTLCache struct {
	mu    sync.RWMutex
	store map[string]entry
	ttl   time.Duration
}

type entry struct {
	v  string
	ts time.Time
}

// New creates a cache with the provided TTL
func New(ttl time.Duration) *TTLCache {
	return &TTLCache{store: make(map[string]entry), ttl: ttl}
}

// Get returns the cached value and true if present and not expired
func (c *TTLCache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Since(e.ts) > c.ttl {
		c.mu.Lock()
		delete(c.store, key)
		c.mu.Unlock()
		return "", false
	}
	return e.v, true
}

// Set stores a value in the cache
func (c *TTLCache) Set(key, value string) {
	c.mu.Lock()
	c.store[key] = entry{v: value, ts: time.Now()}
	c.mu.Unlock()
}

// Invalidate removes a key from the cache
func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.store, key)
	c.mu.Unlock()
}
