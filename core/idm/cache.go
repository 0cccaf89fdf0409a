package idm

import (
	"context"
	"sync"
	"time"

	"theme-sync/core/models"

	"golang.org/x/sync/singleflight"
)

// catalogEntry holds the value lists of one entity.
type catalogEntry struct {
	lists models.ValueLists
	built time.Time
}

// CatalogCache caches value lists per entity name for a fixed TTL.
// Concurrent misses for the same entity share a single upstream fetch.
type CatalogCache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]*catalogEntry
	sf      singleflight.Group
}

// NewCatalogCache wraps source with a TTL cache. A zero TTL disables caching.
func NewCatalogCache(source Source, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		source:  source,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*catalogEntry),
	}
}

func (c *CatalogCache) expired(e *catalogEntry) bool {
	if c.ttl == 0 {
		return true
	}
	return c.now().Sub(e.built) > c.ttl
}

// Get returns the value lists of entityName, fetching them on a miss.
func (c *CatalogCache) Get(ctx context.Context, entityName string) (models.ValueLists, error) {
	if c.ttl == 0 {
		return c.source.FetchValueLists(ctx, entityName)
	}

	c.mu.RLock()
	entry, ok := c.entries[entityName]
	c.mu.RUnlock()
	if ok && !c.expired(entry) {
		return entry.lists, nil
	}

	result, err, _ := c.sf.Do(entityName, func() (any, error) {
		c.mu.RLock()
		entry, ok := c.entries[entityName]
		c.mu.RUnlock()
		if ok && !c.expired(entry) {
			return entry.lists, nil
		}

		lists, err := c.source.FetchValueLists(ctx, entityName)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[entityName] = &catalogEntry{lists: lists, built: c.now()}
		c.mu.Unlock()
		return lists, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(models.ValueLists), nil
}

// Invalidate drops the cached value lists of entityName.
func (c *CatalogCache) Invalidate(entityName string) {
	c.mu.Lock()
	delete(c.entries, entityName)
	c.mu.Unlock()
}
