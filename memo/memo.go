// Package memo provides a typed cache for memoized sub-computations owned by
// a single problem, game or MDP instance.
//
// A search engine never owns a Cache. The problem that wants to remember
// something between heuristic calls (pairwise distances, precomputed
// distance fields, ...) creates one, keeps it as a field and hands it to
// whoever needs it. There is no package-level cache.
//
// Example:
//
//	type maze struct {
//	    dist *memo.Cache[cell, int]
//	}
//
//	func (m *maze) distanceToExit(c cell) int {
//	    return m.dist.GetOrCompute(c, func() int { return m.bfsFromExit(c) })
//	}
package memo

import "sync"

// Cache is a typed key-value store. The zero value is not usable; call New.
// All methods are safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	objects map[K]V
	hits    int
	misses  int
}

// New returns an empty Cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{objects: make(map[K]V)}
}

// Get returns the cached value for k and whether it was present.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.objects[k]
	if ok {
		c.hits++
	} else {
		c.misses++
	}

	return v, ok
}

// Set stores v under k, replacing any previous value.
func (c *Cache[K, V]) Set(k K, v V) {
	c.mu.Lock()
	c.objects[k] = v
	c.mu.Unlock()
}

// GetOrCompute returns the cached value for k, computing and storing it with
// fn on a miss. fn runs while the cache lock is held, so it must not call
// back into the same Cache.
func (c *Cache[K, V]) GetOrCompute(k K, fn func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.objects[k]; ok {
		c.hits++
		return v
	}
	c.misses++
	v := fn()
	c.objects[k] = v

	return v
}

// Len reports the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.objects)
}

// Stats reports cumulative hits and misses across Get and GetOrCompute.
func (c *Cache[K, V]) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits, c.misses
}

// Reset drops every entry and zeroes the statistics.
func (c *Cache[K, V]) Reset() {
	c.mu.Lock()
	c.objects = make(map[K]V)
	c.hits, c.misses = 0, 0
	c.mu.Unlock()
}
