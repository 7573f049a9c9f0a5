package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements an in-memory PageCache. Entries never expire; a run
// owns its cache instance and drops the whole cache when it finishes.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a page from the cache
func (c *MemoryCache) Get(key string) (Page, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(Page), true
	}
	return Page{}, false
}

// Set stores a page in the cache
func (c *MemoryCache) Set(key string, page Page) {
	c.cache.Set(key, page, gocache.NoExpiration)
}

// Clear removes all pages from the cache
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
