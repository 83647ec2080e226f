package diagram

import (
	"hash/fnv"
	"sync"

	"bodymap/internal/taxonomy"
)

// Cache holds parsed documents per (template, angle) pair. A document is
// recomputed only when the source markup changes; parse failures are never
// cached so a retry re-parses from scratch.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	sum uint64
	doc *Document
}

// NewCache creates an empty document cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Parse returns the cached document for the given view when the source is
// unchanged, parsing and caching it otherwise.
func (c *Cache) Parse(template taxonomy.CarTemplateType, angle taxonomy.ViewAngle, src []byte) (*Document, error) {
	key := string(template) + "/" + string(angle)
	sum := checksum(src)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.sum == sum {
		c.mu.Unlock()
		return e.doc, nil
	}
	c.mu.Unlock()

	doc, err := Parse(src)
	if err != nil {
		return doc, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{sum: sum, doc: doc}
	c.mu.Unlock()
	return doc, nil
}

// Invalidate drops the cached document for one view.
func (c *Cache) Invalidate(template taxonomy.CarTemplateType, angle taxonomy.ViewAngle) {
	c.mu.Lock()
	delete(c.entries, string(template)+"/"+string(angle))
	c.mu.Unlock()
}

func checksum(src []byte) uint64 {
	h := fnv.New64a()
	h.Write(src)
	return h.Sum64()
}
