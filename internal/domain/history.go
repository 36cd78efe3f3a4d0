package domain

import "time"

// HistoryRecord captures the outcome of a single search execution.
type HistoryRecord struct {
	ID         string    `json:"id"`
	Query      string    `json:"query"`
	Timestamp  time.Time `json:"timestamp"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	FromCache  bool      `json:"from_cache"`
	DurationMS int64     `json:"duration_ms"`
}

// HistoryStats summarises the ledger contents.
type HistoryStats struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	CacheHits int `json:"cache_hits"`
}

// CacheEntry stores a search result keyed by the raw query string.
type CacheEntry struct {
	Query     string    `json:"query"`
	Result    string    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// CacheStatus is the diagnostic view of the result cache.
type CacheStatus struct {
	TotalEntries int                `json:"total_entries"`
	TTLMinutes   float64            `json:"ttl_minutes"`
	Entries      []CacheStatusEntry `json:"entries"`
}

// CacheStatusEntry describes one stored entry. Expired entries are still listed.
type CacheStatusEntry struct {
	Query      string    `json:"query"`
	Timestamp  time.Time `json:"timestamp"`
	AgeMinutes float64   `json:"age_minutes"`
	Expires    time.Time `json:"expires"`
	Expired    bool      `json:"expired"`
}
