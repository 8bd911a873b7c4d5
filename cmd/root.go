package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/WoLand-Q/Syrve-API-Supplier-Fetcher/config"
)

var cfgFile string

var logger zerolog.Logger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "syrvectl",
	Short: "Fetch, inspect, and export the Syrve back-office supplier directory.",
	Long: `syrvectl talks to a Syrve (iiko) back-office server over /resto/api.

Each invocation opens one authenticated session, fetches the supplier
directory, and releases the session again. The suppliers endpoint answers
with JSON or XML depending on server version; both are handled transparently.`,
	Example: `
  # Create configuration file
  syrvectl config create

  # Print the supplier directory as a table
  syrvectl list

  # Resolve a supplier ID by exact name (case-insensitive)
  syrvectl find "Acme Co"

  # Export the directory snapshot
  syrvectl export --output ./suppliers.csv
  syrvectl export --output ./suppliers.xlsx
  syrvectl export --output ./suppliers.db

  # Verify credentials only
  syrvectl ping
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.syrvectl.yaml, then ./.syrvectl.yaml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	switch cmd.Name() {
	case "list", "find", "export", "ping":
		return true
	}
	return false
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".syrvectl" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".syrvectl")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: syrvectl config create")
	}
}
