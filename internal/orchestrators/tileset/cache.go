package tileset

import (
	"encoding/json"
	"sync"

	"github.com/dungeonforge/dungeon-api/internal/entities"
)

// Cache holds resolved prototype arrays keyed by package name plus
// serialized options. Entries are immutable once written, so concurrent
// reads are safe; concurrent writes on the same key are last-write-wins,
// which wastes work but cannot corrupt state. Lifecycle is caller-owned:
// construct once with the compiler, Clear explicitly, drop with it.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]*entities.ResolvedPrototype
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string][]*entities.ResolvedPrototype),
	}
}

// Key builds the composite cache key for a package and its options.
func (c *Cache) Key(packageName string, opts ResolveOptions) string {
	// Marshaling a struct emits fields in declaration order, so the key
	// is stable for equal options.
	serialized, err := json.Marshal(opts)
	if err != nil {
		return packageName
	}
	return packageName + ":" + string(serialized)
}

// Get returns the cached prototypes for the key, if present.
func (c *Cache) Get(key string) ([]*entities.ResolvedPrototype, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	prototypes, ok := c.entries[key]
	return prototypes, ok
}

// Put stores a resolve result under the key.
func (c *Cache) Put(key string, prototypes []*entities.ResolvedPrototype) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = prototypes
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]*entities.ResolvedPrototype)
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
