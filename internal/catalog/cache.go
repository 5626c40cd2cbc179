package catalog

import (
	"slices"
	"sync"
)

// Cache accumulates every fetched entity in arrival order. It only grows.
// The zero value is ready to use.
type Cache struct {
	mu       sync.RWMutex
	entities []Entity
	seen     map[int]struct{}
}

// Append adds batch to the end of the cache in the order given and returns the
// entities that were actually added. Entities whose ID is already cached are
// skipped, so a repeated page fetch cannot produce duplicate cards.
func (c *Cache) Append(batch []Entity) []Entity {
	if len(batch) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen == nil {
		c.seen = make(map[int]struct{}, len(batch))
	}
	added := make([]Entity, 0, len(batch))
	for _, e := range batch {
		if _, dup := c.seen[e.ID]; dup {
			continue
		}
		c.seen[e.ID] = struct{}{}
		c.entities = append(c.entities, e)
		added = append(added, e)
	}
	return added
}

// All returns a copy of every cached entity in arrival order.
func (c *Cache) All() []Entity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.entities)
}

// Len returns the number of cached entities.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entities)
}

// Lookup returns the cached entity with id.
func (c *Cache) Lookup(id int) (Entity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}
