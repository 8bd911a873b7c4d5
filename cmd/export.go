package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/output"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the supplier directory snapshot to CSV, Excel, or SQLite",
	Long: `Fetch the supplier directory within one authenticated session and write it
to a file. File exports include every field the server sent, not just the
table's display columns.

Output format can be selected explicitly via --format or inferred from the
--output extension.`,
	Example: `
  # Export to CSV
  syrvectl export --output ./suppliers.csv

  # Export to Excel
  syrvectl export --output ./suppliers.xlsx

  # Export to a SQLite snapshot database
  syrvectl export --output ./suppliers.db

  # Force a format independent of extension
  syrvectl export --format sqlite --output ./suppliers.snapshot
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}

		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}

		return client.WithSession(cmd.Context(), func(ctx context.Context, token string) error {
			suppliers := fetchDirectory(ctx, client, token)
			if err := writer.Write(exportOutput, suppliers); err != nil {
				return err
			}
			fmt.Printf("Export completed. Suppliers: %d, Format: %s, File: %s\n", len(suppliers), format, exportOutput)
			return nil
		})
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	case "db", "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel|sqlite (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	_ = exportCmd.MarkFlagRequired("output")
}
