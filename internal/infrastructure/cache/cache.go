package cache

import (
	"sync"
	"time"
)

// Item represents a cached item with expiration
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache is a small in-memory TTL cache. It fronts the public survey form
// lookup, which is read-hot while a survey is active and changes only when
// the creator edits or closes it.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
}

// New creates a cache and starts a janitor that sweeps expired items
func New() *Cache {
	c := &Cache{
		items: make(map[string]Item),
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			c.DeleteExpired()
		}
	}()

	return c
}

// Set stores a value under key for the given duration
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get returns the value for key and whether a live entry was found
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found || time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// Delete removes the entry for key, if any
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired removes all expired items
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}
