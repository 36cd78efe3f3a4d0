package history

import (
	"sync"

	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/ports"
)

// Ledger is a bounded, insertion-ordered log of search outcomes.
// Appending past the cap drops the oldest record.
type Ledger struct {
	mu      sync.Mutex
	records []domain.HistoryRecord
	max     int
}

// NewLedger creates an empty ledger. A non-positive max falls back to domain.MaxHistory.
func NewLedger(max int) *Ledger {
	if max <= 0 || max > domain.MaxHistory {
		max = domain.MaxHistory
	}
	return &Ledger{
		records: make([]domain.HistoryRecord, 0, max),
		max:     max,
	}
}

// Append pushes record to the end of the ledger.
func (l *Ledger) Append(record domain.HistoryRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
	if len(l.records) > l.max {
		// copy so the backing array does not keep growing
		l.records = append(l.records[:0], l.records[1:]...)
	}
}

// Recent returns up to limit records, most recent first.
// Failed records are skipped unless includeErrors is set; limit <= 0 means no limit.
func (l *Ledger) Recent(limit int, includeErrors bool) []domain.HistoryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.HistoryRecord, 0)
	for i := len(l.records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		rec := l.records[i]
		if !rec.Success && !includeErrors {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Stats counts outcomes currently held in the ledger.
func (l *Ledger) Stats() domain.HistoryStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	stats := domain.HistoryStats{Total: len(l.records)}
	for _, rec := range l.records {
		if rec.Success {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
		if rec.FromCache {
			stats.CacheHits++
		}
	}
	return stats
}

// Len returns the number of records held.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Max returns the configured capacity.
func (l *Ledger) Max() int {
	return l.max
}

// Clear drops every record and returns how many were removed.
func (l *Ledger) Clear() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.records)
	l.records = make([]domain.HistoryRecord, 0, l.max)
	return n
}

// snapshot returns a copy of the records in chronological order.
func (l *Ledger) snapshot() []domain.HistoryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.HistoryRecord, len(l.records))
	copy(out, l.records)
	return out
}

var _ ports.HistoryLedger = (*Ledger)(nil)
