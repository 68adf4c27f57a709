package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

// BadgerOptions configures a persistent cache.
type BadgerOptions struct {
	// Dir is the database directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps the database in memory only.
	InMemory bool

	// TTL expires entries; zero keeps them until cleared.
	TTL time.Duration
}

// BadgerCache is a Cache persisted in BadgerDB, so fetched sources survive
// between runs. Values are stored as JSON.
type BadgerCache[V any] struct {
	db  *badger.DB
	ttl time.Duration

	hits   int64
	misses int64
}

// Compile-time interface check.
var _ Cache[int] = (*BadgerCache[int])(nil)

// NewBadgerCache opens (or creates) the database.
func NewBadgerCache[V any](opts BadgerOptions) (*BadgerCache[V], error) {
	badgerOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	badgerOpts.Logger = nil

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("opening badger db: %w", err)
	}

	return &BadgerCache[V]{db: db, ttl: opts.TTL}, nil
}

// Get retrieves a cached value.
func (c *BadgerCache[V]) Get(key string) (V, bool) {
	var value V

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &value)
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		atomic.AddInt64(&c.misses, 1)
		var zero V
		return zero, false
	}

	atomic.AddInt64(&c.hits, 1)
	return value, true
}

// Set stores a value. Failures are logged; the cache is best effort.
func (c *BadgerCache[V]) Set(key string, value V) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), data)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Delete removes a single entry.
func (c *BadgerCache[V]) Delete(key string) {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache delete failed")
	}
}

// Clear removes all cached entries.
func (c *BadgerCache[V]) Clear() {
	if err := c.db.DropAll(); err != nil {
		log.Warn().Err(err).Msg("cache clear failed")
	}
}

// Stats returns hit/miss counters and the number of live entries.
func (c *BadgerCache[V]) Stats() Stats {
	entries := 0
	_ = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			entries++
		}
		return nil
	})

	return Stats{
		Hits:    atomic.LoadInt64(&c.hits),
		Misses:  atomic.LoadInt64(&c.misses),
		Entries: entries,
	}
}

// Close closes the database.
func (c *BadgerCache[V]) Close() error {
	return c.db.Close()
}
