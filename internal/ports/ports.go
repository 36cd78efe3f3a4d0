// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The search orchestrator depends only on these
// interfaces, so the Gemini subprocess, the in-memory stores and the logging
// backend can be swapped for stubs in tests.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., SearchExecutor, ResultCache)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"io"

	"github.com/doeshing/gemsearch/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.gemsearch/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// SearchExecutor runs a single web search through an external program.
// Failures are reported as *domain.SearchError values.
type SearchExecutor interface {
	Invoke(query string) (string, error)
}

// BinaryLocator resolves the external search program without running it.
type BinaryLocator interface {
	Binary() string
	Locate() (string, error)
}

// ResultCache stores search results keyed by the raw query string.
type ResultCache interface {
	Get(query string) (string, bool)
	Put(query, result string)
	Delete(query string) bool
	Clear() int
	Len() int
	Status() domain.CacheStatus
}

// HistoryLedger keeps a bounded, ordered log of search outcomes.
type HistoryLedger interface {
	Append(record domain.HistoryRecord)
	Recent(limit int, includeErrors bool) []domain.HistoryRecord
	Stats() domain.HistoryStats
	Len() int
	Clear() int
}

// HistoryExporter dumps the ledger for offline inspection.
type HistoryExporter interface {
	ExportJSONL(w io.Writer) error
	ExportSQLite(path string) error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
