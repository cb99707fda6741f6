// Copyright Niklas Bubeck, 2026. All rights reserved.

package profile

import (
	"sync"
	"time"

	"github.com/nbubeck/scholar-page/pkg/types"
)

// cacheEntry pairs a snapshot with the time it was stored. Entries are
// superseded, never mutated.
type cacheEntry struct {
	snap     types.ProfileSnapshot
	storedAt time.Time
}

// snapshotCache is an in-memory TTL cache keyed by author ID. Expiry is
// measured from the store time of the entry, not from last access. The cache
// lives for the process lifetime only.
type snapshotCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	if ttl <= 0 {
		ttl = types.DefaultCacheTTL
	}
	return &snapshotCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached snapshot for key if it is still within its TTL.
func (c *snapshotCache) Get(key string) (types.ProfileSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		return types.ProfileSnapshot{}, false
	}
	return e.snap, true
}

// GetStale returns the cached snapshot regardless of TTL. Used to keep
// serving the previous snapshot when a refresh fails.
func (c *snapshotCache) GetStale(key string) (types.ProfileSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	return e.snap, ok
}

// Put stores snap unless a strictly newer snapshot (by FetchedAt) is already
// present. Overlapping fetches therefore resolve to the last writer by
// timestamp, not by completion order. Reports whether the entry was stored.
func (c *snapshotCache) Put(key string, snap types.ProfileSnapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && e.snap.FetchedAt.After(snap.FetchedAt) {
		return false
	}
	c.entries[key] = cacheEntry{snap: snap, storedAt: c.now()}
	return true
}
