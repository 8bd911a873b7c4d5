package syrve

import (
	"errors"
	"testing"
)

func TestFindSupplierIDMatchesCaseAndWhitespaceInsensitively(t *testing.T) {
	t.Parallel()

	suppliers := []Supplier{
		{"id": "1", "name": "  Foo Bar  "},
		{"id": "2", "name": "Acme Co"},
	}

	id, err := FindSupplierID(suppliers, "foo bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "1" {
		t.Fatalf("expected id 1, got %q", id)
	}

	id, err = FindSupplierID(suppliers, "  ACME CO ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "2" {
		t.Fatalf("expected id 2, got %q", id)
	}
}

func TestFindSupplierIDFirstMatchWins(t *testing.T) {
	t.Parallel()

	suppliers := []Supplier{
		{"id": "10", "name": "Dup"},
		{"id": "11", "name": "dup"},
	}

	id, err := FindSupplierID(suppliers, "DUP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "10" {
		t.Fatalf("expected first match id 10, got %q", id)
	}
}

func TestFindSupplierIDMissIsNotFound(t *testing.T) {
	t.Parallel()

	if _, err := FindSupplierID(nil, "anyone"); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound on empty directory, got %v", err)
	}

	suppliers := []Supplier{{"id": "1", "name": "Foo"}}
	if _, err := FindSupplierID(suppliers, "Bar"); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
}

func TestFindSupplierIDToleratesRecordsWithoutName(t *testing.T) {
	t.Parallel()

	suppliers := []Supplier{
		{"id": "1"},
		{"id": "2", "name": "Present"},
	}

	id, err := FindSupplierID(suppliers, "Present")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "2" {
		t.Fatalf("expected id 2, got %q", id)
	}
}
