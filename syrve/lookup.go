package syrve

import (
	"errors"
	"strings"
)

// ErrSupplierNotFound reports a lookup miss. Callers treat it as an outcome,
// not a failure.
var ErrSupplierNotFound = errors.New("supplier not found")

// FindSupplierID resolves a supplier name to its identifier. The match is
// exact after trimming surrounding whitespace and ignoring case; the first
// match in directory order wins.
func FindSupplierID(suppliers []Supplier, name string) (string, error) {
	target := strings.TrimSpace(name)
	for _, supplier := range suppliers {
		if strings.EqualFold(strings.TrimSpace(supplier.Name()), target) {
			return supplier.ID(), nil
		}
	}
	return "", ErrSupplierNotFound
}
