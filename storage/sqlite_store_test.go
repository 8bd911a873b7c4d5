package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/syrve"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "suppliers.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestReplaceAndListSuppliersRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	snapshot := []syrve.Supplier{
		{"id": "42", "code": "A-1", "name": "Acme Co", "supplier": "true", "deleted": "false", "phone": "+1"},
		{"id": "7", "name": "Beta LLC"},
	}

	if err := store.ReplaceSuppliers(snapshot); err != nil {
		t.Fatalf("replace suppliers: %v", err)
	}

	stored, err := store.ListSuppliers()
	if err != nil {
		t.Fatalf("list suppliers: %v", err)
	}
	if !reflect.DeepEqual(stored, snapshot) {
		t.Fatalf("unexpected snapshot:\ngot  %#v\nwant %#v", stored, snapshot)
	}
}

func TestReplaceSuppliersDiscardsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	first := []syrve.Supplier{
		{"id": "1", "name": "Old One"},
		{"id": "2", "name": "Old Two"},
	}
	if err := store.ReplaceSuppliers(first); err != nil {
		t.Fatalf("replace suppliers: %v", err)
	}

	second := []syrve.Supplier{{"id": "3", "name": "Fresh"}}
	if err := store.ReplaceSuppliers(second); err != nil {
		t.Fatalf("replace suppliers: %v", err)
	}

	stored, err := store.ListSuppliers()
	if err != nil {
		t.Fatalf("list suppliers: %v", err)
	}
	if len(stored) != 1 || stored[0].Name() != "Fresh" {
		t.Fatalf("expected only the fresh snapshot, got %#v", stored)
	}
}

func TestListSuppliersEmptyStore(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	stored, err := store.ListSuppliers()
	if err != nil {
		t.Fatalf("list suppliers: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected empty snapshot, got %#v", stored)
	}
}
