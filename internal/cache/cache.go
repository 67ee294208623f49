// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package cache provides the TTL cache shared by the catalog adapter and the
// recommendation engine.
//
// Values live in an in-memory map and, when a Store is configured, in a
// durable layer that survives restarts. A lookup that misses memory but finds
// an unexpired durable entry repopulates memory. Expired entries are removed
// from whichever layer they are found in at read time; nothing is evicted for
// size.
//
// Values are kept JSON-encoded so both layers hold the same bytes. Get decodes
// into the caller's destination:
//
//	var d tmdb.Details
//	if c.Get("details_movie_603", &d) {
//	    return &d, nil
//	}
//	d = fetch()
//	c.Set("details_movie_603", d, 15*time.Minute)
//
// Two concurrent misses for the same key may both fetch and both Set; the
// last write wins.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinediscover/internal/metrics"
)

// entry is an in-memory value. It is visible iff now < expiresAt.
type entry struct {
	data      []byte
	expiresAt time.Time
}

// record is the durable representation of an entry.
type record struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt int64           `json:"expires_at"` // unix milliseconds
}

// Stats tracks cache effectiveness.
type Stats struct {
	Hits         int64 `json:"hits"`
	Misses       int64 `json:"misses"`
	DurableHits  int64 `json:"durable_hits"`
	Evictions    int64 `json:"evictions"`
	CorruptReads int64 `json:"corrupt_reads"`
	Entries      int   `json:"entries"`
}

// Cache is a TTL cache with an optional durable fallback. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	store  Store
	now    func() time.Time
	logger zerolog.Logger

	hits, misses, durableHits, evictions, corrupt atomic.Int64
}

// Option configures a Cache.
type Option func(*Cache)

// WithStore adds a durable layer behind the in-memory map.
func WithStore(s Store) Option {
	return func(c *Cache) { c.store = s }
}

// WithClock replaces time.Now. Tests use it to move past expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithLogger sets the logger used for swallowed durable-layer failures.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(c *Cache) { c.logger = l.With().Str("component", "cache").Logger() }
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get decodes the value stored under key into dst and reports whether it was found.
// Expired or undecodable entries count as misses and are removed.
func (c *Cache) Get(key string, dst interface{}) bool {
	now := c.now()

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		if !now.Before(e.expiresAt) {
			c.evict(key)
			metrics.RecordCacheLookup("memory", "expired")
			return c.miss()
		}
		if err := json.Unmarshal(e.data, dst); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("cached value does not match destination type")
			return c.miss()
		}
		c.hits.Add(1)
		metrics.RecordCacheLookup("memory", "hit")
		return true
	}
	metrics.RecordCacheLookup("memory", "miss")

	if c.store == nil {
		return c.miss()
	}
	return c.getDurable(key, dst, now)
}

func (c *Cache) getDurable(key string, dst interface{}, now time.Time) bool {
	raw, found, err := c.store.Load(key)
	if err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("durable cache read failed")
		return c.miss()
	}
	if !found {
		metrics.RecordCacheLookup("durable", "miss")
		return c.miss()
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil || len(rec.Value) == 0 {
		c.discardCorrupt(key)
		return c.miss()
	}

	expiresAt := time.UnixMilli(rec.ExpiresAt)
	if !now.Before(expiresAt) {
		c.removeDurable(key)
		c.evictions.Add(1)
		metrics.RecordCacheLookup("durable", "expired")
		return c.miss()
	}

	if err := json.Unmarshal(rec.Value, dst); err != nil {
		c.discardCorrupt(key)
		return c.miss()
	}

	c.mu.Lock()
	c.entries[key] = entry{data: rec.Value, expiresAt: expiresAt}
	size := len(c.entries)
	c.mu.Unlock()
	metrics.CacheEntries.Set(float64(size))

	c.hits.Add(1)
	c.durableHits.Add(1)
	metrics.RecordCacheLookup("durable", "hit")
	return true
}

// Set stores value under key until now+ttl. A non-positive ttl stores nothing.
// Durable write failures are logged and otherwise ignored.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("value is not cacheable")
		return
	}
	expiresAt := c.now().Add(ttl)

	c.mu.Lock()
	c.entries[key] = entry{data: data, expiresAt: expiresAt}
	size := len(c.entries)
	c.mu.Unlock()
	metrics.CacheEntries.Set(float64(size))

	if c.store == nil {
		return
	}
	rec, err := json.Marshal(record{Value: data, ExpiresAt: expiresAt.UnixMilli()})
	if err != nil {
		return
	}
	if err := c.store.Save(key, rec, expiresAt); err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("durable cache write failed")
	}
}

// Invalidate removes key from both layers.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	size := len(c.entries)
	c.mu.Unlock()
	metrics.CacheEntries.Set(float64(size))

	c.removeDurable(key)
}

// Sweep drops expired in-memory entries and returns how many were removed.
// Lookups already ignore expired entries; sweeping only bounds memory.
func (c *Cache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	c.evictions.Add(int64(removed))
	metrics.CacheEntries.Set(float64(size))
	return removed
}

// Len returns the number of in-memory entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:         c.hits.Load(),
		Misses:       c.misses.Load(),
		DurableHits:  c.durableHits.Load(),
		Evictions:    c.evictions.Load(),
		CorruptReads: c.corrupt.Load(),
		Entries:      c.Len(),
	}
}

// HitRate returns hits / (hits + misses) as a percentage.
func (c *Cache) HitRate() float64 {
	hits, misses := c.hits.Load(), c.misses.Load()
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses) * 100
}

func (c *Cache) miss() bool {
	c.misses.Add(1)
	return false
}

func (c *Cache) evict(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.evictions.Add(1)
	c.removeDurable(key)
}

func (c *Cache) discardCorrupt(key string) {
	c.corrupt.Add(1)
	metrics.RecordCacheLookup("durable", "corrupt")
	c.logger.Debug().Str("key", key).Msg("discarding corrupt durable cache entry")
	c.removeDurable(key)
}

func (c *Cache) removeDurable(key string) {
	if c.store == nil {
		return
	}
	if err := c.store.Remove(key); err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("durable cache delete failed")
	}
}

// GenerateKey builds a compact key from a method name and arbitrary parameters.
//
//	key := cache.GenerateKey("discover_movie", params)
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
