package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/syrve"
)

type Writer interface {
	Write(path string, suppliers []syrve.Supplier) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	case "sqlite", "db":
		return &SQLiteWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// exportColumns returns the display columns followed by every other field
// name seen across the records, sorted. File exports lose nothing the server
// sent even though the console table projects only the display columns.
func exportColumns(suppliers []syrve.Supplier) []string {
	known := make(map[string]bool, len(DisplayColumns))
	for _, column := range DisplayColumns {
		known[column] = true
	}

	extraSet := map[string]struct{}{}
	for _, supplier := range suppliers {
		for key := range supplier {
			if !known[key] {
				extraSet[key] = struct{}{}
			}
		}
	}

	extras := make([]string, 0, len(extraSet))
	for key := range extraSet {
		extras = append(extras, key)
	}
	sort.Strings(extras)

	columns := make([]string, 0, len(DisplayColumns)+len(extras))
	columns = append(columns, DisplayColumns...)
	return append(columns, extras...)
}
