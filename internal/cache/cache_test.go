package cache

import (
	"testing"
	"time"
)

func TestLRUCache(t *testing.T) {
	cache := NewLRUCache[string](2, time.Hour)

	cache.Set("key1", "test")

	got, found := cache.Get("key1")
	if !found {
		t.Fatal("Get(key1) = miss, want hit")
	}
	if got != "test" {
		t.Errorf("Get(key1) = %v, want test", got)
	}

	if _, found := cache.Get("nonexistent"); found {
		t.Error("Get(nonexistent) found, want miss")
	}
}

func TestLRUEviction(t *testing.T) {
	cache := NewLRUCache[int](2, time.Hour)

	cache.Set("key1", 1)
	cache.Set("key2", 2)
	cache.Set("key3", 3) // Evicts key1

	if _, found := cache.Get("key1"); found {
		t.Error("key1 should be evicted")
	}
	if _, found := cache.Get("key2"); !found {
		t.Error("key2 should exist")
	}
}

func TestLRUEvictionRespectsRecency(t *testing.T) {
	cache := NewLRUCache[int](2, time.Hour)

	cache.Set("key1", 1)
	cache.Set("key2", 2)
	_, _ = cache.Get("key1")
	cache.Set("key3", 3) // Evicts key2, key1 was used more recently

	if _, found := cache.Get("key1"); !found {
		t.Error("key1 should survive")
	}
	if _, found := cache.Get("key2"); found {
		t.Error("key2 should be evicted")
	}
}

func TestLRUExpiration(t *testing.T) {
	cache := NewLRUCache[string](10, 10*time.Millisecond)

	cache.Set("key1", "test")

	time.Sleep(20 * time.Millisecond)

	if _, found := cache.Get("key1"); found {
		t.Error("key1 should be expired")
	}
	if stats := cache.Stats(); stats.Entries != 0 {
		t.Errorf("Entries after expiry = %d, want 0", stats.Entries)
	}
}

func TestLRUNoTTL(t *testing.T) {
	cache := NewLRUCache[string](10, 0)

	cache.Set("key1", "test")
	time.Sleep(5 * time.Millisecond)

	if _, found := cache.Get("key1"); !found {
		t.Error("entries without TTL should not expire")
	}
}

func TestLRUClear(t *testing.T) {
	cache := NewLRUCache[string](10, time.Hour)

	cache.Set("key1", "1")
	cache.Set("key2", "2")
	cache.Clear()

	if stats := cache.Stats(); stats.Entries != 0 {
		t.Errorf("Entries after Clear() = %d, want 0", stats.Entries)
	}
}

func TestLRUStats(t *testing.T) {
	cache := NewLRUCache[string](10, time.Hour)

	cache.Set("key1", "test")
	_, _ = cache.Get("key1")        // hit
	_, _ = cache.Get("key1")        // hit
	_, _ = cache.Get("nonexistent") // miss

	stats := cache.Stats()
	if stats.Hits != 2 {
		t.Errorf("Hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
}

func TestComputeKey(t *testing.T) {
	key1 := ComputeKey("https://example.com/rules.yaml")
	key2 := ComputeKey("https://example.com/rules.yaml")
	key3 := ComputeKey("https://example.com/other.yaml")

	if key1 != key2 {
		t.Error("Same parts should have same key")
	}
	if key1 == key3 {
		t.Error("Different parts should have different keys")
	}
	if ComputeKey("a", "bc") == ComputeKey("ab", "c") {
		t.Error("Part boundaries should affect the key")
	}

	// Key should be 64 chars (SHA-256 hex)
	if len(key1) != 64 {
		t.Errorf("Key length = %d, want 64", len(key1))
	}
}

func TestNopCache(t *testing.T) {
	c := &NopCache[string]{}
	c.Set("k", "v")

	if _, found := c.Get("k"); found {
		t.Error("NopCache should never hit")
	}
	if stats := c.Stats(); stats.Misses != 1 || stats.Entries != 0 {
		t.Errorf("Stats() = %+v", stats)
	}
}
