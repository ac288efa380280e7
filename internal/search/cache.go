// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package search

import (
	"sync"
	"time"
)

// cacheEntry is a stored value with its expiry instant.
type cacheEntry struct {
	data      any
	expiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache fronting search and
// suggest queries. Expiry is checked lazily on Get; a background sweep
// additionally reclaims entries nobody asks for again.
//
// The cache is explicitly constructed and injected into handlers; there
// is no package-level singleton.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
	stats   CacheStats
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// cleanupInterval is how often the background sweep runs.
const cleanupInterval = 5 * time.Minute

// NewCache creates a cache with the given default TTL and starts the
// background cleanup goroutine, which runs for the cache lifetime.
func NewCache(ttl time.Duration) *Cache {
	c := newCache(ttl, time.Now)
	go c.cleanupLoop()
	return c
}

// NewCacheWithClock creates a cache using the supplied clock and no
// background sweep. Intended for deterministic expiry tests.
func NewCacheWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return newCache(ttl, now)
}

func newCache(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached value for key, or (nil, false) on a miss. A
// lookup that finds an expired entry deletes it and reports a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.mu.Lock()
		c.stats.Misses++
		c.mu.Unlock()
		return nil, false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.stats.Misses++
		c.stats.Evictions++
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.stats.Hits++
	c.mu.Unlock()
	return entry.data, true
}

// Set stores value under key with the cache default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a per-entry TTL, overwriting
// any existing entry.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		data:      value,
		expiresAt: c.now().Add(ttl),
	}
}

// Delete removes key. Safe to call for absent keys.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Size returns the current entry count, including not-yet-swept
// expired entries.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		c.sweep()
	}
}

func (c *Cache) sweep() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
		}
	}
}
