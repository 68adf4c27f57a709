// Package cache provides in-memory and on-disk caching for loaded rule sources.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync/atomic"
)

// Cache defines the interface for caching values by key.
type Cache[V any] interface {
	// Get retrieves a cached value.
	Get(key string) (V, bool)

	// Set stores a value in the cache.
	Set(key string, value V)

	// Delete removes a single entry.
	Delete(key string)

	// Clear removes all cached entries.
	Clear()

	// Stats returns hit/miss counters.
	Stats() Stats
}

// Stats holds cache counters.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

// ComputeKey derives a stable key from its parts (SHA-256 hex).
func ComputeKey(parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(h[:])
}

// NopCache never stores anything. It stands in when caching is disabled.
type NopCache[V any] struct {
	misses int64
}

func (c *NopCache[V]) Get(string) (V, bool) {
	atomic.AddInt64(&c.misses, 1)
	var zero V
	return zero, false
}

func (c *NopCache[V]) Set(string, V) {}
func (c *NopCache[V]) Delete(string) {}
func (c *NopCache[V]) Clear()        {}
func (c *NopCache[V]) Stats() Stats  { return Stats{Misses: atomic.LoadInt64(&c.misses)} }

var _ Cache[int] = (*NopCache[int])(nil)
