package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/syrve"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, suppliers []syrve.Supplier) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	columns := exportColumns(suppliers)

	for col, column := range columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, column); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, supplier := range suppliers {
		row := i + 2
		for col, column := range columns {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, supplier.Get(column)); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
