package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/syrve"
)

// SQLiteStore persists one supplier directory snapshot. The five display
// fields get their own columns for ad-hoc querying; the full record is kept
// verbatim in the fields column so no server field is lost.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	// position preserves server response order across the round trip.
	const schema = `
CREATE TABLE IF NOT EXISTS suppliers (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	supplier_id TEXT NOT NULL DEFAULT '',
	code TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL DEFAULT '',
	supplier TEXT NOT NULL DEFAULT '',
	deleted TEXT NOT NULL DEFAULT '',
	fields TEXT NOT NULL,
	fetched_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// ReplaceSuppliers swaps the stored snapshot for the given one in a single
// transaction.
func (s *SQLiteStore) ReplaceSuppliers(suppliers []syrve.Supplier) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM suppliers;`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear previous snapshot: %w", err)
	}

	const insertStmt = `
INSERT INTO suppliers (supplier_id, code, name, supplier, deleted, fields)
VALUES (?, ?, ?, ?, ?, ?);
`
	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range suppliers {
		fields, err := json.Marshal(record)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("encode supplier fields: %w", err)
		}
		if _, err := stmt.Exec(
			record.ID(),
			record.Get("code"),
			record.Name(),
			record.Get("supplier"),
			record.Get("deleted"),
			string(fields),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert supplier: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListSuppliers returns the stored snapshot in its original directory order.
func (s *SQLiteStore) ListSuppliers() ([]syrve.Supplier, error) {
	rows, err := s.db.Query(`SELECT fields FROM suppliers ORDER BY position;`)
	if err != nil {
		return nil, fmt.Errorf("query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := make([]syrve.Supplier, 0)
	for rows.Next() {
		var fields string
		if err := rows.Scan(&fields); err != nil {
			return nil, fmt.Errorf("scan supplier row: %w", err)
		}
		var record syrve.Supplier
		if err := json.Unmarshal([]byte(fields), &record); err != nil {
			return nil, fmt.Errorf("decode supplier fields: %w", err)
		}
		suppliers = append(suppliers, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suppliers: %w", err)
	}

	return suppliers, nil
}
