// Package cache provides a small thread-safe memo table shared by batch
// items that derive the same value from the same parameters.
package cache

import "sync"

// Cache is a generic thread-safe cache with a soft size limit.
// When the limit is exceeded the least recently used quarter is evicted.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      int64
}

type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache holding about softLimit entries. A softLimit of 0
// means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
	}
}

// Get returns the value stored for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Set stores value for key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// Load returns the value for key, computing it with create on a miss.
// Failed computations are not stored. create runs without the lock held,
// so concurrent misses on one key may compute it more than once.
func (c *Cache[K, V]) Load(key K, create func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*entry[V])
	c.tick = 0
}

// set stores an entry and evicts if needed. Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest shrinks the cache to three quarters of its soft limit,
// oldest entries first. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	// partial selection sort: only the evicted prefix needs ordering
	for i := 0; i < toEvict; i++ {
		oldest := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[oldest].atime {
				oldest = j
			}
		}
		all[i], all[oldest] = all[oldest], all[i]
		delete(c.entries, all[i].key)
	}
}
