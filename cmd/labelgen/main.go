// Package main is the entry point for the labelgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/homeboxlabs/labelgen/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labelgen",
		Short: "Generate printable Homebox label sheets",
		Long:  `Labelgen fetches asset labels from a Homebox server and lays them out on printable HTML sheets.`,
	}

	cmd.AddCommand(generateCmd())
	cmd.AddCommand(expandCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
