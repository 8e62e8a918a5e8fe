package cache

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is an in-process LRU with a fixed TTL per entry. It serves read
// paths that tolerate slightly stale data, such as the public feed.
type Cache[V any] struct {
	lru *lru.Cache[string, entry[V]]
	ttl time.Duration
}

func New[V any](size int, ttl time.Duration) (*Cache[V], error) {
	l, err := lru.New[string, entry[V]](size)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache: %w", err)
	}

	return &Cache[V]{lru: l, ttl: ttl}, nil
}

func (c *Cache[V]) Set(key string, value V) {
	c.lru.Add(key, entry[V]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	})
}

// Get returns the cached value, or the zero value and false when the key is
// absent or its entry has expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		var zero V
		return zero, false
	}

	if time.Now().After(e.expiresAt) {
		c.lru.Remove(key)
		var zero V
		return zero, false
	}

	return e.value, true
}

func (c *Cache[V]) Delete(key string) {
	c.lru.Remove(key)
}
