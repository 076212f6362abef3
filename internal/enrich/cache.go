// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"sync"
	"time"
)

// Cache memoizes enrichment lookups for their TTL. It is constructed
// explicitly and passed to the client; there is no package-level
// instance, so two applications (or two tests) never share state.
type Cache struct {
	mu         sync.Mutex
	defaultTTL time.Duration
	entries    map[string]cacheEntry

	// now is replaceable in tests.
	now func() time.Time
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// NewCache returns a cache whose entries default to the given TTL.
func NewCache(defaultTTL time.Duration) *Cache {
	return &Cache{
		defaultTTL: defaultTTL,
		entries:    make(map[string]cacheEntry),
		now:        time.Now,
	}
}

// Set stores value under key. A zero ttl uses the cache default.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expires: c.now().Add(ttl)}
}

// Get returns the live value for key, if any. Expired entries are
// deleted on access.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Len reports the number of stored entries, including any not yet
// evicted ones past their TTL.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
