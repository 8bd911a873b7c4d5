package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage syrvectl configuration file values.",
	Long: `Create and display the syrvectl configuration file.

The configuration stores the Syrve connection settings:
- syrve.url / syrve.login / syrve.password or syrve.password_sha1
- syrve.timeout_seconds
- find.default_name`,
	Example: `
  # Create default config in $HOME/.syrvectl.yaml
  syrvectl config create

  # Show active config and source file
  syrvectl config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
