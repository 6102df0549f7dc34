// Package cache provides a bounded LRU+TTL memo with request coalescing.
// One instance is owned by the composing application and handed to the
// equity calculator; tests construct a fresh one per case.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

type Cache[V any] struct {
	lru *expirable.LRU[string, V]
	sf  singleflight.Group
}

// New builds a cache holding at most maxEntries values, each treated as a
// miss once it is older than ttl. maxEntries <= 0 means unbounded,
// ttl <= 0 means no expiry.
func New[V any](maxEntries int, ttl time.Duration) *Cache[V] {
	return &Cache[V]{lru: expirable.NewLRU[string, V](maxEntries, nil, ttl)}
}

func (c *Cache[V]) Get(key string) (V, bool) { return c.lru.Get(key) }

func (c *Cache[V]) Put(key string, v V) { c.lru.Add(key, v) }

func (c *Cache[V]) Len() int { return c.lru.Len() }

// GetOrCompute returns the cached value for key, or runs compute to fill
// it. Concurrent callers for the same uncached key share a single
// in-flight computation; unrelated keys never serialize on each other.
// Errors are not cached.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		// Re-check: a previous flight may have filled the entry between
		// our miss and acquiring the flight.
		if v, ok := c.lru.Get(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return v, err
		}
		c.lru.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}
