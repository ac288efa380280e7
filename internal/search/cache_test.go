// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package search

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCacheWithClock(time.Minute, time.Now)
	c.Set("k", "v")

	got, ok := c.Get("k")
	if !ok || got.(string) != "v" {
		t.Errorf("expected hit with v, got %v %v", got, ok)
	}
}

func TestCache_MissUnknownKey(t *testing.T) {
	c := NewCacheWithClock(time.Minute, time.Now)
	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for unknown key")
	}
	if stats := c.Stats(); stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewCacheWithClock(time.Minute, clock)

	c.SetWithTTL("k", 42, 10*time.Millisecond)

	now = now.Add(11 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
	if c.Size() != 0 {
		t.Errorf("expected expired entry removed, size %d", c.Size())
	}
}

func TestCache_NotExpiredBeforeTTL(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewCacheWithClock(time.Minute, clock)

	c.SetWithTTL("k", 42, 10*time.Millisecond)

	now = now.Add(9 * time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Error("expected hit before TTL elapses")
	}
}

func TestCache_FlushAndDelete(t *testing.T) {
	c := NewCacheWithClock(time.Minute, time.Now)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected deleted key to miss")
	}

	c.Flush()
	if c.Size() != 0 {
		t.Errorf("expected empty cache after flush, size %d", c.Size())
	}
}

func TestCache_SweepRemovesExpired(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewCacheWithClock(time.Minute, clock)

	c.SetWithTTL("old", 1, time.Millisecond)
	c.SetWithTTL("fresh", 2, time.Hour)

	now = now.Add(time.Second)
	c.sweep()

	if c.Size() != 1 {
		t.Errorf("expected sweep to leave 1 entry, got %d", c.Size())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("sweep removed a live entry")
	}
}

func TestBuildCacheKey_TagOrderIndependent(t *testing.T) {
	a := BuildCacheKey("search", Query{Q: "onam", Tags: []string{"b", "a"}, Page: 1, PageSize: 20})
	b := BuildCacheKey("search", Query{Q: "onam", Tags: []string{"a", "b"}, Page: 1, PageSize: 20})
	if a != b {
		t.Errorf("tag order changed cache key: %s vs %s", a, b)
	}
}

func TestBuildCacheKey_DistinguishesQueries(t *testing.T) {
	a := BuildCacheKey("search", Query{Q: "onam", Page: 1, PageSize: 20})
	b := BuildCacheKey("search", Query{Q: "diwali", Page: 1, PageSize: 20})
	if a == b {
		t.Error("different queries produced identical keys")
	}
}

func TestBuildCacheKey_MethodPrefix(t *testing.T) {
	a := BuildCacheKey("search", Query{Q: "onam"})
	b := BuildCacheKey("suggest", Query{Q: "onam"})
	if a == b {
		t.Error("search and suggest keys must not collide")
	}
}
