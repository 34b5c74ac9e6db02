package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uryuwr/cardgrab/internal/config"
	"github.com/uryuwr/cardgrab/internal/report"
)

// NewSetsCmd creates the sets command.
func NewSetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List the sets available in the catalog",
		Long: `Sets queries the catalog for all known sets and prints them with their
set codes. Use a code from this listing with "cardgrab set".`,
		Args: cobra.NoArgs,
		RunE: runSetsCmd,
	}

	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .cardgrab in current or home directory)")

	return cmd
}

// runSetsCmd executes the sets command.
func runSetsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildSetsConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext(logger)
	defer cancel()

	sets, err := newCatalogClient(cfg).ListSets(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch set catalog: %w", err)
	}

	return report.WriteSetTable(cmd.OutOrStdout(), sets)
}

// buildSetsConfig builds the reduced configuration for the sets command,
// which only needs the network settings.
func buildSetsConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}
