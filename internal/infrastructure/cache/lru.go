// Package cache holds the in-memory caches used by the rendering pipeline.
package cache

import "sync"

// LRU is a fixed-capacity least-recently-used cache safe for concurrent use.
// It implements port.Cache[K, V].
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*node[K, V]
	// head is the most recently used node, tail the least.
	head, tail *node[K, V]
	onEvict    func(K, V)

	hits, misses uint64
}

type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictHook registers fn to run, under the cache lock, whenever an entry
// is pushed out by capacity.
func WithEvictHook[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// NewLRU creates a cache holding at most capacity entries (minimum 1).
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.moveToFront(n)
	return n.value, true
}

// Set stores value under key, evicting the least recently used entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		n.value = value
		c.moveToFront(n)
		return
	}

	if len(c.items) >= c.capacity && c.tail != nil {
		evicted := c.tail
		c.unlink(evicted)
		delete(c.items, evicted.key)
		if c.onEvict != nil {
			c.onEvict(evicted.key, evicted.value)
		}
	}

	n := &node[K, V]{key: key, value: value}
	c.pushFront(n)
	c.items[key] = n
}

// Remove deletes key. Missing keys are ignored.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		c.unlink(n)
		delete(c.items, key)
	}
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns the cached keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for n := c.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Stats returns the hit and miss counters.
func (c *LRU[K, V]) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *LRU[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *LRU[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

func (c *LRU[K, V]) moveToFront(n *node[K, V]) {
	if c.head == n {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}
