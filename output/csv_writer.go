package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/syrve"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, suppliers []syrve.Supplier) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	columns := exportColumns(suppliers)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, supplier := range suppliers {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = supplier.Get(column)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
