package service

import (
	"sync"
	"time"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
)

// catalogCache holds the computed catalog for a short TTL. Availability is
// derived data and brief staleness is acceptable on the public read path;
// stock adjustments invalidate explicitly, reservations ride out the TTL.
// Authoritative checks never read the cache, they read the database.
type catalogCache struct {
	mu        sync.RWMutex
	entries   []dto.CatalogEntry
	expiresAt time.Time
	ttl       time.Duration
}

func newCatalogCache(ttl time.Duration) *catalogCache {
	return &catalogCache{ttl: ttl}
}

// get returns the cached catalog, or nil when expired or unset.
func (c *catalogCache) get() []dto.CatalogEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entries == nil || time.Now().After(c.expiresAt) {
		return nil
	}
	return c.entries
}

// set stores the catalog and resets the TTL.
func (c *catalogCache) set(entries []dto.CatalogEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	c.expiresAt = time.Now().Add(c.ttl)
}

// invalidate drops the cached catalog.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
