package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the configuration",
	Long: `Print the default configuration, or with --check load the configuration
the other commands would use and report whether it is valid.

Config files are searched in this order:
  --config <path>
  ~/.blocky/configs/blocky.yaml
  ./configs/blocky.yaml

Examples:
  blocky config > ~/.blocky/configs/blocky.yaml
  blocky config --check
  blocky config --check --config ./my-blocky.yaml --smart 1,25`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the effective configuration")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if !flagCheck {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Best-effort output
		return
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Configuration OK: %d players, depth %d, %d rounds, goal %s\n",
		opts.Roster.Total(), opts.MaxDepth, opts.MaxTurns, opts.GoalKind)
}
