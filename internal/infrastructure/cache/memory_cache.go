package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/ports"
)

// MemoryCache stores search results in process memory keyed by the raw query.
// Entries are never evicted; staleness is decided when they are read.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]domain.CacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache returns an empty cache. A non-positive ttl falls back to one hour.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &MemoryCache{
		entries: make(map[string]domain.CacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the time source, mainly for tests.
func (c *MemoryCache) WithClock(now func() time.Time) *MemoryCache {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

// Get returns the stored result if it is younger than the TTL.
// An expired entry stays in the map and is reported as a miss.
func (c *MemoryCache) Get(query string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[query]
	if !ok {
		return "", false
	}
	if c.now().Sub(entry.Timestamp) >= c.ttl {
		return "", false
	}
	return entry.Result, true
}

// Put stores result under query, overwriting any previous entry.
func (c *MemoryCache) Put(query, result string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[query] = domain.CacheEntry{
		Query:     query,
		Result:    result,
		Timestamp: c.now(),
	}
}

// Delete removes a single entry and reports whether it existed.
func (c *MemoryCache) Delete(query string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[query]; !ok {
		return false
	}
	delete(c.entries, query)
	return true
}

// Clear removes all entries and returns how many were stored.
func (c *MemoryCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]domain.CacheEntry)
	return n
}

// Len counts stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// TTL exposes the configured time-to-live.
func (c *MemoryCache) TTL() time.Duration {
	return c.ttl
}

// Status reports every stored entry, oldest first.
func (c *MemoryCache) Status() domain.CacheStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	entries := make([]domain.CacheStatusEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		age := now.Sub(entry.Timestamp)
		entries = append(entries, domain.CacheStatusEntry{
			Query:      entry.Query,
			Timestamp:  entry.Timestamp,
			AgeMinutes: age.Minutes(),
			Expires:    entry.Timestamp.Add(c.ttl),
			Expired:    age >= c.ttl,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Query < entries[j].Query
		}
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return domain.CacheStatus{
		TotalEntries: len(entries),
		TTLMinutes:   c.ttl.Minutes(),
		Entries:      entries,
	}
}

// ParseTTL converts a config duration string, defaulting to one hour.
func ParseTTL(raw string) time.Duration {
	if raw == "" {
		return domain.DefaultCacheTTL
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return domain.DefaultCacheTTL
}

var _ ports.ResultCache = (*MemoryCache)(nil)
