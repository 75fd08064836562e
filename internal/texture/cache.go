package texture

import (
	"os"
	"sync"
)

// Resolver resolves a texture reference to a sampling texture.
type Resolver interface {
	Resolve(name string) (*Image, error)
}

// Cache is a concurrency-safe image texture cache. Names are looked up in
// the index first and fall back to being used as a literal path.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	tex *Image
	err error
}

// NewCache creates a texture cache. index may be nil.
func NewCache(index *Index) *Cache {
	if index == nil {
		index = &Index{entries: map[string]string{}}
	}
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture. Failed loads are cached too, so a
// missing file is only read once.
func (c *Cache) Resolve(name string) (*Image, error) {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		path = name
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.tex, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	var entry cacheEntry
	if _, err := os.Stat(path); err != nil {
		entry.err = err
	} else {
		entry.tex, entry.err = LoadImage(path)
	}

	// Write lock with double-check
	c.mu.Lock()
	if existing, exists := c.items[path]; exists {
		c.mu.Unlock()
		return existing.tex, existing.err
	}
	c.items[path] = &entry
	c.mu.Unlock()

	return entry.tex, entry.err
}

// Len returns the number of cached paths, including failed loads.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
