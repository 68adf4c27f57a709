package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"
)

// LRUCache implements an in-memory LRU cache with per-entry expiry.
type LRUCache[V any] struct {
	maxEntries int
	ttl        time.Duration

	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List

	hits   int64
	misses int64
}

type lruEntry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// NewLRUCache creates a new LRU cache. A non-positive ttl never expires entries.
func NewLRUCache[V any](maxEntries int, ttl time.Duration) *LRUCache[V] {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &LRUCache[V]{
		maxEntries: maxEntries,
		ttl:        ttl,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
	}
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, exists := c.entries[key]
	if !exists {
		atomic.AddInt64(&c.misses, 1)
		return zero, false
	}

	entry := elem.Value.(*lruEntry[V])

	// Check expiration
	if c.ttl > 0 && time.Now().After(entry.expiresAt) {
		c.order.Remove(elem)
		delete(c.entries, key)
		atomic.AddInt64(&c.misses, 1)
		return zero, false
	}

	c.order.MoveToFront(elem)
	atomic.AddInt64(&c.hits, 1)
	return entry.value, true
}

func (c *LRUCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Update existing entry
	if elem, exists := c.entries[key]; exists {
		entry := elem.Value.(*lruEntry[V])
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.maxEntries {
		c.evictOldest()
	}

	entry := &lruEntry[V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.entries[key] = c.order.PushFront(entry)
}

func (c *LRUCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.entries[key]; exists {
		c.order.Remove(elem)
		delete(c.entries, key)
	}
}

func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

func (c *LRUCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:    atomic.LoadInt64(&c.hits),
		Misses:  atomic.LoadInt64(&c.misses),
		Entries: c.order.Len(),
	}
}

func (c *LRUCache[V]) evictOldest() {
	elem := c.order.Back()
	if elem != nil {
		entry := elem.Value.(*lruEntry[V])
		delete(c.entries, entry.key)
		c.order.Remove(elem)
	}
}
