package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCatalogCache_SetGet(t *testing.T) {
	cache := NewCatalogCache[string]()
	cache.Set("quiz:a", "snapshot", time.Minute)

	got, ok := cache.Get("quiz:a")
	assert.True(t, ok)
	assert.Equal(t, "snapshot", got)
}

func TestCatalogCache_Expiry(t *testing.T) {
	cache := NewCatalogCache[int]()
	cache.Set("quiz:a", 1, -time.Second)

	_, ok := cache.Get("quiz:a")
	assert.False(t, ok)
}

func TestCatalogCache_Flush(t *testing.T) {
	cache := NewCatalogCache[int]()
	cache.Set("a", 1, time.Minute)
	cache.Set("b", 2, time.Minute)
	cache.Flush()

	_, ok := cache.Get("a")
	assert.False(t, ok)
	_, ok = cache.Get("b")
	assert.False(t, ok)
}
