package infra_inmem_session

import (
	"sync"
	"time"
)

type entry struct {
	value    string
	deadline time.Time
}

// Cache is a TTL key-value store with the same contract as the redis
// session driver. Expired entries are dropped lazily on read.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
	}
}

func (c *Cache) Set(key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:    value,
		deadline: time.Now().Add(ttl),
	}

	return nil
}

func (c *Cache) Get(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", nil
	}
	if time.Now().After(e.deadline) {
		delete(c.entries, key)
		return "", nil
	}

	return e.value, nil
}

func (c *Cache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}
