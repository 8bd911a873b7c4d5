package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/syrve"
)

// DisplayColumns is the fixed projection rendered by the console table and
// emitted first by the file writers. Missing fields render as empty strings.
var DisplayColumns = []string{"id", "code", "name", "supplier", "deleted"}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTable prints the supplier directory as a bordered table, one row per
// record in server response order. An empty directory prints a notice instead
// of a degenerate zero-width table.
func RenderTable(w io.Writer, suppliers []syrve.Supplier) {
	if len(suppliers) == 0 {
		fmt.Fprintln(w, "Supplier directory is empty.")
		return
	}

	headers := make([]string, len(DisplayColumns))
	for i, column := range DisplayColumns {
		headers[i] = strings.ToUpper(column)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)

	for _, supplier := range suppliers {
		row := make([]string, len(DisplayColumns))
		for i, column := range DisplayColumns {
			row[i] = supplier.Get(column)
		}
		t.Row(row...)
	}

	fmt.Fprintln(w, t.Render())
}
