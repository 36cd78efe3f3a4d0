package search

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/ports"
)

// Service orchestrates the search lifecycle end-to-end:
// validate, cache lookup, invoke, store, record history.
type Service struct {
	Cache    ports.ResultCache
	History  ports.HistoryLedger
	Executor ports.SearchExecutor
	Logger   ports.Logger

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// Execute runs query through the pipeline.
//
// Validation failures return immediately without a history record. Every other
// outcome appends exactly one record. Errors are always *domain.SearchError.
func (s *Service) Execute(query string, useCache bool) (string, error) {
	if s.Cache == nil || s.History == nil || s.Executor == nil || s.Logger == nil {
		return "", domain.NewSearchError(domain.KindUnexpected, "search.Service dependencies not satisfied", nil)
	}

	if err := Validate(query); err != nil {
		s.Logger.Debug("query rejected", map[string]interface{}{"error": err.Error()})
		return "", err
	}

	start := s.now()

	if useCache {
		if cached, ok := s.Cache.Get(query); ok {
			s.Logger.Debug("cache hit", map[string]interface{}{"query": query})
			s.record(query, start, nil, true)
			return cached, nil
		}
	}

	s.Logger.Info("invoking gemini", map[string]interface{}{
		"query":     query,
		"use_cache": useCache,
	})

	result, err := s.Executor.Invoke(query)
	if err != nil {
		searchErr := asSearchError(err)
		s.record(query, start, searchErr, false)
		s.Logger.Error("search failed", searchErr, map[string]interface{}{
			"query": query,
			"kind":  string(searchErr.Kind),
		})
		return "", searchErr
	}

	if useCache {
		s.Cache.Put(query, result)
	}
	s.record(query, start, nil, false)
	return result, nil
}

// CacheStatus exposes the cache diagnostic view.
func (s *Service) CacheStatus() domain.CacheStatus {
	return s.Cache.Status()
}

// RecentHistory returns up to limit records, most recent first.
func (s *Service) RecentHistory(limit int, includeErrors bool) []domain.HistoryRecord {
	return s.History.Recent(limit, includeErrors)
}

// HistoryStats summarises the ledger.
func (s *Service) HistoryStats() domain.HistoryStats {
	return s.History.Stats()
}

// ClearCacheEntry removes one cached query and reports whether it existed.
func (s *Service) ClearCacheEntry(query string) bool {
	removed := s.Cache.Delete(query)
	s.Logger.Info("cache entry cleared", map[string]interface{}{"query": query, "removed": removed})
	return removed
}

// ClearCache drops every cached result and returns the count removed.
func (s *Service) ClearCache() int {
	n := s.Cache.Clear()
	s.Logger.Info("cache cleared", map[string]interface{}{"removed": n})
	return n
}

func (s *Service) record(query string, start time.Time, err *domain.SearchError, fromCache bool) {
	now := s.now()
	rec := domain.HistoryRecord{
		ID:         s.newID(),
		Query:      query,
		Timestamp:  now,
		Success:    err == nil,
		FromCache:  fromCache,
		DurationMS: now.Sub(start).Milliseconds(),
	}
	if err != nil {
		rec.Error = err.Error()
	}
	s.History.Append(rec)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func asSearchError(err error) *domain.SearchError {
	var se *domain.SearchError
	if errors.As(err, &se) {
		return se
	}
	return domain.NewSearchError(domain.KindUnexpected, err.Error(), err)
}

// Compile-time interface compliance check
var _ domain.SearchService = (*Service)(nil)
