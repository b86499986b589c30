package search

// Cache memoizes ranked results per literal query string. Entries are never
// evicted; the engine resets the whole cache when the catalog is swapped.
// Growth is bounded only by the variety of queries within one catalog
// generation, an accepted trade for a short-lived interactive session.
type Cache struct {
	entries map[string]*Result
}

// NewCache creates an empty result cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Result)}
}

// Get returns the cached result for a query key, if present.
func (c *Cache) Get(key string) (*Result, bool) {
	r, ok := c.entries[key]
	return r, ok
}

// Put stores the result for a query key, replacing any previous entry.
func (c *Cache) Put(key string, r *Result) {
	c.entries[key] = r
}

// Reset drops every cached entry.
func (c *Cache) Reset() {
	c.entries = make(map[string]*Result)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
