package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values. Secrets are
not printed, only whether they are set.`,
	Example: `
  # Show active configuration
  syrvectl config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
			fmt.Println("Configuration:")
			fmt.Printf("syrve.url: %s\n", cfg.Syrve.URL)
			fmt.Printf("syrve.login: %s\n", cfg.Syrve.Login)
			fmt.Printf("syrve.password set: %t\n", cfg.Syrve.Password != "")
			fmt.Printf("syrve.password_sha1 set: %t\n", cfg.Syrve.PasswordSHA1 != "")
			fmt.Printf("syrve.timeout_seconds: %d\n", cfg.Syrve.TimeoutSeconds)
			fmt.Printf("find.default_name: %s\n", cfg.Find.DefaultName)
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
