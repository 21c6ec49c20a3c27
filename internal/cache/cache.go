package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries.
// A limit of 0 means unlimited.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*cacheEntry[K, V]
	order   *lruList[K]
	limit   int

	hits   uint64
	misses uint64
}

type cacheEntry[K comparable, V any] struct {
	once  sync.Once
	value V
	node  *lruNode[K]
}

// New creates a cache holding at most limit entries.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*cacheEntry[K, V]),
		order:   newLRUList[K](),
		limit:   max(limit, 0),
	}
}

// GetOrCreate returns the cached value for key, calling create on a miss.
//
// create runs outside the cache lock, so building one key never blocks
// lookups of another. Concurrent callers asking for the same key wait for a
// single create call and share its result.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	e := c.entry(key)
	e.once.Do(func() { e.value = create() })
	return e.value
}

// entry returns the slot for key, inserting an empty one on a miss.
func (c *Cache[K, V]) entry(key K) *cacheEntry[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.order.MoveToFront(e.node)
		return e
	}
	c.misses++

	e := &cacheEntry[K, V]{node: c.order.PushFront(key)}
	c.entries[key] = e
	for c.limit > 0 && len(c.entries) > c.limit {
		oldest, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
	}
	return e
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Len: len(c.entries), Capacity: c.limit, Hits: c.hits, Misses: c.misses}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
}
