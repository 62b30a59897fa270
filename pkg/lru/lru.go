package lru

import "container/list"

// Cache is a capacity-bounded key/value store with least-recently-used
// eviction. Lookups and inserts are O(1): a map indexes into a doubly-linked
// list whose front is the most recently used entry.
//
// Cache is not safe for concurrent use; callers sharing one instance must
// serialize access.
type Cache[K comparable, V any] struct {
	capacity int
	order    *list.List
	items    map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most capacity entries. Capacity must be at
// least 1.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
}

// Get returns the value for key and refreshes its recency. The second return
// is false on a miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Put inserts or overwrites key. An overwrite resets recency to most recently
// used. When an insert pushes the cache over capacity, the least recently
// used entry is evicted; Put grows the cache by at most one, so a single
// eviction always restores the bound.
func (c *Cache[K, V]) Put(key K, value V) {
	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry[K, V]).key)
	}
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.order.Init()
	c.items = make(map[K]*list.Element, c.capacity)
}

// Len returns the number of entries currently stored.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}
