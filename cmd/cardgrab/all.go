package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/uryuwr/cardgrab/internal/catalog"
	"github.com/uryuwr/cardgrab/internal/config"
)

// NewAllCmd creates the all command.
func NewAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Fetch the entire card catalog",
		Long: `All crawls every card in the catalog, page by page, and stores them in
the local database.

A full crawl issues one request per card plus one per list page, paced
by the configured delay, so it can take a while. The command shows the
estimated duration and asks for confirmation before starting; pass
--yes for unattended runs.

Examples:
  # Crawl everything, with confirmation prompt
  cardgrab all

  # Unattended full crawl without images
  cardgrab all --yes --no-images

  # Full crawl with a JSON summary written to a file
  cardgrab all -y -j -o summary.json`,
		Args: cobra.NoArgs,
		RunE: runAllCmd,
	}

	addCrawlFlags(cmd)
	cmd.Flags().BoolP("yes", "y", false,
		"Skip the confirmation prompt before crawling")

	return cmd
}

// runAllCmd executes the all command.
func runAllCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.AssumeYes, err = cmd.Flags().GetBool("yes")
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

	if !cfg.AssumeYes {
		ok, err := confirmFullCrawl(ctx, cmd, cfg)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "aborted")
			return nil
		}
	}

	summary, err := c.FetchAll(ctx)
	if summary != nil {
		if outErr := outputSummary(cfg, summary); outErr != nil {
			logger.Error("failed to write summary", "error", outErr)
		}
	}
	return err
}

// confirmFullCrawl asks the user to confirm a full-catalog crawl after
// showing its size and estimated duration. The size comes from a single
// list request; the crawl itself refetches page one, which the per-run
// dedup makes harmless.
func confirmFullCrawl(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (bool, error) {
	page, err := newCatalogClient(cfg).ListPage(ctx, 1, catalog.Filters{})
	if err != nil {
		return false, fmt.Errorf("failed to query catalog size: %w", err)
	}

	estimate := time.Duration(page.TotalCount) * cfg.RequestDelay
	fmt.Fprintf(cmd.OutOrStdout(),
		"The catalog holds %d cards across %d pages.\n"+
			"A full crawl will take roughly %s at the current delay (%s).\n",
		page.TotalCount, page.TotalPage,
		estimate.Round(time.Second), cfg.RequestDelay)

	fmt.Fprint(cmd.OutOrStdout(), "Proceed? [y/N]: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
