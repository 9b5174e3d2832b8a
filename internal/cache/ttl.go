// Package cache provides a small TTL cache with an injectable clock.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	v       V
	expires time.Time
}

// TTL caches values for a fixed duration.
type TTL[K comparable, V any] struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[K]entry[V]
	now func() time.Time
}

// NewTTL creates a cache whose entries live for ttl.
func NewTTL[K comparable, V any](ttl time.Duration) *TTL[K, V] {
	return &TTL[K, V]{ttl: ttl, m: make(map[K]entry[V]), now: time.Now}
}

// WithClock replaces the time source (tests).
func (c *TTL[K, V]) WithClock(now func() time.Time) *TTL[K, V] {
	c.now = now
	return c
}

// Get returns the value if present and not expired.
func (c *TTL[K, V]) Get(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[k]
	if !ok || !c.now().Before(e.expires) {
		delete(c.m, k)
		var zero V
		return zero, false
	}
	return e.v, true
}

// Set stores v under k.
func (c *TTL[K, V]) Set(k K, v V) {
	c.mu.Lock()
	c.m[k] = entry[V]{v: v, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate drops k.
func (c *TTL[K, V]) Invalidate(k K) {
	c.mu.Lock()
	delete(c.m, k)
	c.mu.Unlock()
}

// InvalidateAll drops every entry.
func (c *TTL[K, V]) InvalidateAll() {
	c.mu.Lock()
	clear(c.m)
	c.mu.Unlock()
}
