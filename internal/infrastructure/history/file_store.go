package history

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/doeshing/gemsearch/internal/domain"
)

// ExportJSONL writes the ledger to w as one JSON record per line, oldest first.
func (l *Ledger) ExportJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, rec := range l.snapshot() {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// ExportJSONLFile writes the ledger to dest, creating parent directories as needed.
func (l *Ledger) ExportJSONLFile(dest string) (err error) {
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePermissions)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return l.ExportJSONL(file)
}
