package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/payrecon/pkg/cache"
)

// MemoryCache implements DeliveryCache in process memory.
type MemoryCache struct {
	entries   map[string]cacheEntry
	mu        sync.RWMutex
	now       func() time.Time
	lastPrune time.Time
}

var _ cache.DeliveryCache = (*MemoryCache)(nil)

// pruneEvery bounds how often Set sweeps expired entries.
const pruneEvery = 5 * time.Minute

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns a live entry.
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists || c.now().After(entry.expiresAt) {
		return "", false, nil
	}
	return entry.outcome, true, nil
}

// Set stores an outcome with TTL
func (c *MemoryCache) Set(_ context.Context, key, outcome string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = cacheEntry{outcome: outcome, expiresAt: now.Add(ttl)}
	if now.Sub(c.lastPrune) >= pruneEvery {
		c.prune(now)
	}
	return nil
}

// Len reports the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// prune removes expired entries. Caller holds the lock.
func (c *MemoryCache) prune(now time.Time) {
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	c.lastPrune = now
}

type cacheEntry struct {
	outcome   string
	expiresAt time.Time
}
