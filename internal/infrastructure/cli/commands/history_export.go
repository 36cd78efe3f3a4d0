package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/doeshing/gemsearch/internal/app"
	"github.com/doeshing/gemsearch/internal/pkg/filesystem"
)

// exportHistory dumps the in-process ledger to dest.
// .db/.sqlite/.sqlite3 destinations get a SQLite file, anything else JSON Lines.
func exportHistory(container *app.Container, dest string) error {
	if dest == "" {
		return nil
	}
	dest = filesystem.ExpandPath(dest)
	if container.History == nil {
		return errors.New(ErrHistoryUnavailable)
	}
	switch strings.ToLower(filepath.Ext(dest)) {
	case ".db", ".sqlite", ".sqlite3":
		if err := container.History.ExportSQLite(dest); err != nil {
			return fmt.Errorf("export history: %w", err)
		}
	default:
		if err := container.History.ExportJSONLFile(dest); err != nil {
			return fmt.Errorf("export history: %w", err)
		}
	}
	container.Logger.Debug("history exported", map[string]interface{}{
		"path":    dest,
		"records": container.History.Len(),
	})
	return nil
}
