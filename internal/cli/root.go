package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"notecal/internal/config"
	appLog "notecal/internal/log"
	"notecal/internal/vault"
)

var (
	flagConfig   string
	flagVault    string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "notecal",
	Short: "Extract calendar events from markdown notes",
	Long: `notecal scans a vault of markdown notes for checklist items and lines
carrying @{YYYY-MM-DD} due-date annotations and turns them into calendar
events, served as JSON, an iCalendar feed, or plain listings.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagLogLevel != "" {
			appLog.SetLevel(appLog.ParseLevel(flagLogLevel))
		}
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", defaultConfigPath(), "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagVault, "vault", "", "Vault directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "notecal", "config.yaml")
	}
	return "notecal.yaml"
}

// loadSetup loads the config (creating a default file on first run) and
// opens the vault, honoring the --vault override.
func loadSetup() (*config.Config, *vault.Vault, error) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("load config %s: %w", flagConfig, err)
	}
	if flagLogLevel == "" {
		appLog.SetLevel(appLog.ParseLevel(conf.LogLevel))
	}
	if flagVault != "" {
		conf.Vault = flagVault
	}
	v, err := vault.Open(conf.Vault, conf.Ignore...)
	if err != nil {
		return nil, nil, err
	}
	return conf, v, nil
}
