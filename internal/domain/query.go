package domain

// SearchService exposes the use-case boundary for running a search.
type SearchService interface {
	Execute(query string, useCache bool) (string, error)
	CacheStatus() CacheStatus
	RecentHistory(limit int, includeErrors bool) []HistoryRecord
	HistoryStats() HistoryStats
	ClearCacheEntry(query string) bool
	ClearCache() int
}
