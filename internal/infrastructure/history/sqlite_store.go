package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/ports"
)

const createSearchesTable = `CREATE TABLE IF NOT EXISTS searches (
	id TEXT PRIMARY KEY,
	timestamp TEXT,
	query TEXT,
	success INTEGER,
	error TEXT,
	from_cache INTEGER,
	duration_ms INTEGER
);`

// ExportSQLite writes the ledger into a SQLite database at path.
// Existing rows with the same id are replaced; nothing is ever read back.
func (l *Ledger) ExportSQLite(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createSearchesTable); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO searches
		(id, timestamp, query, success, error, from_cache, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, rec := range l.snapshot() {
		if _, err := stmt.Exec(
			rec.ID,
			rec.Timestamp.Format(time.RFC3339Nano),
			rec.Query,
			boolToInt(rec.Success),
			rec.Error,
			boolToInt(rec.FromCache),
			rec.DurationMS,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryExporter = (*Ledger)(nil)
