// pkg/memcache/catalog_cache.go
package mem

import (
	"sync"
	"time"
)

// CatalogCache is a small TTL cache for validated catalog snapshots
// (quizzes, tool catalogs, matrices). Catalogs are read-only for this
// service and change rarely, so a short TTL plus an explicit Flush on the
// admin reload endpoint is all the coherence needed.
type CatalogCache[T any] struct {
	mu   sync.RWMutex
	data map[string]cacheEntry[T]
}

type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

func NewCatalogCache[T any]() *CatalogCache[T] {
	return &CatalogCache[T]{
		data: make(map[string]cacheEntry[T]),
	}
}

func (c *CatalogCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		var zero T
		return zero, false
	}
	return e.value, true
}

func (c *CatalogCache[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = cacheEntry[T]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *CatalogCache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Flush drops every entry; the admin catalog reload calls this.
func (c *CatalogCache[T]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]cacheEntry[T])
}
