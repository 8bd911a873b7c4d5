package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch the supplier directory and print it as a table.",
	Long: `Fetch the supplier directory within one authenticated session and print it
as a bordered table (columns: id, code, name, supplier, deleted).

A failed or malformed fetch prints an empty directory; the run still exits 0
because the session was opened and released correctly.`,
	Example: `
  # Print the full supplier directory
  syrvectl list
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}

		return client.WithSession(cmd.Context(), func(ctx context.Context, token string) error {
			suppliers := fetchDirectory(ctx, client, token)
			output.RenderTable(os.Stdout, suppliers)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
