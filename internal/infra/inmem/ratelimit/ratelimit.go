package infra_inmem_ratelimit

import (
	"sync"
	"time"
)

type window struct {
	count    int64
	deadline time.Time
}

// Counter tracks fixed-window request counts per key. The counter
// resets once its window deadline passes.
type Counter struct {
	mu      sync.Mutex
	windows map[string]*window
}

func New() *Counter {
	return &Counter{
		windows: make(map[string]*window),
	}
}

func (c *Counter) Incr(key string, ttl time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	w, ok := c.windows[key]
	if !ok || now.After(w.deadline) {
		w = &window{deadline: now.Add(ttl)}
		c.windows[key] = w
	}
	w.count++

	c.sweep(now)

	return w.count, nil
}

// sweep drops stale windows so idle keys do not accumulate.
func (c *Counter) sweep(now time.Time) {
	if len(c.windows) < 1024 {
		return
	}
	for key, w := range c.windows {
		if now.After(w.deadline) {
			delete(c.windows, key)
		}
	}
}
