package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/output"
	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/syrve"
)

var findNoTable bool

var findCmd = &cobra.Command{
	Use:   "find [name]",
	Short: "Resolve a supplier ID by exact name match.",
	Long: `Fetch the supplier directory, print it, and resolve one supplier name to its
identifier. The match is exact after trimming surrounding whitespace and
ignoring case; the first match in directory order wins.

Without an argument the name comes from find.default_name in the config.
A miss is an outcome, not a failure: the command logs it and exits 0.`,
	Example: `
  # Look up one supplier by name
  syrvectl find "Acme Co"

  # Look up the configured default name, without the table
  syrvectl find --no-table
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClientFromConfig()
		if err != nil {
			return err
		}

		target := ""
		if len(args) == 1 {
			target = args[0]
		}
		if strings.TrimSpace(target) == "" {
			target = cfg.Find.DefaultName
		}
		if strings.TrimSpace(target) == "" {
			return errors.New("no supplier name given; pass one as an argument or set find.default_name")
		}

		return client.WithSession(cmd.Context(), func(ctx context.Context, token string) error {
			suppliers := fetchDirectory(ctx, client, token)
			if !findNoTable {
				output.RenderTable(os.Stdout, suppliers)
			}

			id, err := syrve.FindSupplierID(suppliers, target)
			if errors.Is(err, syrve.ErrSupplierNotFound) {
				logger.Warn().Str("name", target).Msg("supplier not found")
				return nil
			}
			if err != nil {
				return err
			}

			logger.Info().Str("name", target).Str("id", id).Msg("supplier found")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().BoolVar(&findNoTable, "no-table", false, "Skip printing the directory table")
}
