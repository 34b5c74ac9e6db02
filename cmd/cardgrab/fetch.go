package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch CARD-NUMBER...",
		Short: "Fetch specific cards by card number",
		Long: `Fetch looks up one or more cards by their printed card number, stores
them in the local database, and downloads their card art.

Card numbers are matched exactly against the catalog's search results,
so variant prints of the same number (e.g. alternate art) resolve to the
base card.

Examples:
  # Fetch a single card
  cardgrab fetch OP01-001

  # Fetch several cards in one run
  cardgrab fetch OP01-001 OP01-002 EB04-010

  # Fetch without downloading images
  cardgrab fetch --no-images OP01-001

  # Write a Markdown summary to a file
  cardgrab fetch -m -o report.md OP01-001`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFetchCmd,
	}

	addCrawlFlags(cmd)

	return cmd
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext(logger)
	defer cancel()

	c, db, err := buildCrawler(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	summary, err := c.FetchByNumbers(ctx, args)
	if summary != nil {
		if outErr := outputSummary(cfg, summary); outErr != nil {
			logger.Error("failed to write summary", "error", outErr)
		}
	}
	return err
}
