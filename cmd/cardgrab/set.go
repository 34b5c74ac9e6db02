package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uryuwr/cardgrab/internal/crawler"
	"github.com/uryuwr/cardgrab/internal/report"
)

// NewSetCmd creates the set command.
func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set SET-CODE",
		Short: "Fetch every card of one set",
		Long: `Set crawls all cards belonging to a single set, identified by its set
code (the part of the card number before the dash, e.g. OP01 or EB04).

The code is resolved against the catalog's own set listing, so both the
bare code and the bracketed form printed on the packaging are accepted.
Run "cardgrab sets" to list the available sets.

Examples:
  # Fetch the whole EB04 set
  cardgrab set EB04

  # Fetch a set at a slower request rate
  cardgrab set --delay 1s OP01`,
		Args: cobra.ExactArgs(1),
		RunE: runSetCmd,
	}

	addCrawlFlags(cmd)

	return cmd
}

// runSetCmd executes the set command.
func runSetCmd(cmd *cobra.Command, args []string) error {
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

	summary, err := c.FetchSet(ctx, args[0])
	if errors.Is(err, crawler.ErrSetNotFound) {
		// Show what the catalog actually offers before failing, so the
		// user can correct the code without a second lookup.
		if sets, listErr := newCatalogClient(cfg).ListSets(ctx); listErr == nil {
			fmt.Fprintf(os.Stderr, "unknown set %q, available sets:\n\n", args[0])
			if tableErr := report.WriteSetTable(os.Stderr, sets); tableErr != nil {
				logger.Error("failed to write set table", "error", tableErr)
			}
		}
		return err
	}
	if summary != nil {
		if outErr := outputSummary(cfg, summary); outErr != nil {
			logger.Error("failed to write summary", "error", outErr)
		}
	}
	return err
}
