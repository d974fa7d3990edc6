package assistant

import (
	"github.com/aissam-out/darija-assistant/internal/worddist"
)

// Cache memoizes per-word lookup results for the lifetime of an Assistant.
// Empty results are stored too, so a word that matched nothing is never
// looked up twice. Entries are never evicted.
type Cache struct {
	entries map[string]worddist.Translation
}

// NewCache creates an empty lookup cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]worddist.Translation),
	}
}

// Get retrieves a cached result for a normalized word.
func (c *Cache) Get(word string) (worddist.Translation, bool) {
	translation, ok := c.entries[word]
	return translation, ok
}

// Add stores a lookup result, overwriting any previous entry.
func (c *Cache) Add(word string, translation worddist.Translation) {
	c.entries[word] = translation
}

// Len returns the number of cached words, including empty results.
func (c *Cache) Len() int {
	return len(c.entries)
}

// All returns a copy of every cached entry.
func (c *Cache) All() map[string]worddist.Translation {
	// Return a copy to prevent external modification
	result := make(map[string]worddist.Translation, len(c.entries))
	for word, translation := range c.entries {
		result[word] = translation
	}
	return result
}
