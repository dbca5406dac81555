package cache

import (
	"context"
	"sync"
	"time"
)

// entry pairs a value with its expiry deadline. Entries are stored by value
// and never handed out by reference.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a thread-safe key-value store with per-entry expiry.
// Expiry is checked at read time; a stale entry may occupy memory until it
// is overwritten or a sweep runs, but it is never returned.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	now     func() time.Time
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return newWithClock[V](time.Now)
}

// newWithClock creates a cache with an injectable clock for tests.
func newWithClock[V any](now func() time.Time) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		now:     now,
	}
}

// Get returns the value for key if it exists and has not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, unconditionally overwriting any existing entry
// and resetting its expiry window to ttl from now.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Delete removes key from the cache.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes all expired entries and returns how many were removed.
func (c *Cache[V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// StartSweeper launches a background goroutine that sweeps expired entries
// every interval until ctx is cancelled.
func (c *Cache[V]) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()
}
