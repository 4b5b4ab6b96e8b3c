package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sushibar",
		Short: "Sushi bar service simulator",
		Long: `sushibar runs the restaurant simulation core headlessly.

Configuration is read from config.yaml (., ./configs, /etc/sushibar),
SUSHI_* environment variables and a .env file.

Examples:
  sushibar simulate --frames 7200 --seed 42
  sushibar serve --pid-file /tmp/sushibar.pid
  sushibar evaluate "Salmon Nigiri" --fish 0.6 --rice 0.4
  sushibar catalog seed
  sushibar catalog import menu.json
  sushibar logs <run-id> --level ERROR`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search standard locations)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log at debug level regardless of config")

	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewEvaluateCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewLogsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
