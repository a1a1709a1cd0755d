package microicon

import "sync"

// Loader produces an icon on a cache miss
type Loader func() Icon

// Cache memoizes icons per entity identifier for the lifetime of the process.
// Entries, including None, are never evicted or refreshed.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

// cacheEntry holds a single computed icon
type cacheEntry struct {
	once sync.Once
	icon Icon
}

// NewCache creates an empty icon cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// GetIcon returns the icon stored for entityID, running loader on the first
// request only. Concurrent callers for the same id wait for that single run
// and observe its result.
func (c *Cache) GetIcon(entityID string, loader Loader) Icon {
	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[string]*cacheEntry)
	}
	entry, exists := c.entries[entityID]
	if !exists {
		entry = &cacheEntry{}
		c.entries[entityID] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		if loader != nil {
			entry.icon = loader()
		}
	})
	return entry.icon
}

// Has reports whether entityID has been requested before
func (c *Cache) Has(entityID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.entries[entityID]
	return exists
}

// Len returns the number of cached entities
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
