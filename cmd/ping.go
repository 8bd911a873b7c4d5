package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Verify credentials by opening and releasing a session.",
	Long: `Authenticate against the configured Syrve server and log out again without
fetching anything. Useful after editing credentials in the config file.`,
	Example: `
  # Check that the configured credentials work
  syrvectl ping
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}

		return client.WithSession(cmd.Context(), func(ctx context.Context, token string) error {
			logger.Info().Msg("credentials verified")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
