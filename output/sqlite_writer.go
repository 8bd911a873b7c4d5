package output

import (
	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/storage"
	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/syrve"
)

// SQLiteWriter exports the directory snapshot into a SQLite database file,
// replacing whatever snapshot the file held before.
type SQLiteWriter struct{}

func (w *SQLiteWriter) Write(path string, suppliers []syrve.Supplier) error {
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ReplaceSuppliers(suppliers)
}
