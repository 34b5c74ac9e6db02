package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/uryuwr/cardgrab/internal/catalog"
	"github.com/uryuwr/cardgrab/internal/config"
	"github.com/uryuwr/cardgrab/internal/crawler"
	"github.com/uryuwr/cardgrab/internal/database"
	"github.com/uryuwr/cardgrab/internal/images"
	"github.com/uryuwr/cardgrab/internal/model"
	"github.com/uryuwr/cardgrab/internal/report"
)

// addCrawlFlags registers the flags shared by the crawling subcommands
// (fetch, set, all).
func addCrawlFlags(cmd *cobra.Command) {
	// Network behavior flags
	cmd.Flags().DurationP("delay", "d", config.DefaultRequestDelay,
		"Delay between catalog requests")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().IntP("retries", "r", config.DefaultRetries,
		"Retries per failed request before giving up")

	// Storage flags
	cmd.Flags().String("cards-dir", "",
		"Directory for downloaded card images (default: XDG data dir)")
	cmd.Flags().String("db-dir", "",
		"Directory for the card database (default: XDG data dir)")
	cmd.Flags().Bool("no-images", false,
		"Skip image downloads, store card data only")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .cardgrab in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON summary (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown summary (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write summary to specified file path (creates directories if needed)")
}

// buildConfig creates a Config from the optional config file and the
// cobra command flags. Precedence: flags > config file > defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load overrides from the config file.
	// If the user explicitly specified a config file path, error if not
	// found. If no path specified, silently skip when no file exists.
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

	// Flags override the config file only when set on the command line.
	if cmd.Flags().Changed("delay") {
		cfg.RequestDelay, err = cmd.Flags().GetDuration("delay")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("retries") {
		cfg.Retries, err = cmd.Flags().GetInt("retries")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("cards-dir") {
		cfg.CardsDir, err = cmd.Flags().GetString("cards-dir")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("db-dir") {
		cfg.DBDir, err = cmd.Flags().GetString("db-dir")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("no-images") {
		cfg.NoImages, err = cmd.Flags().GetBool("no-images")
		if err != nil {
			return nil, err
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM, so a
// crawl interrupted mid-run still flushes its summary.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// newCatalogClient creates the catalog client from the configuration.
func newCatalogClient(cfg *config.Config) *catalog.Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	opts := []catalog.Option{
		catalog.WithHTTPClient(httpClient),
		catalog.WithPageSize(cfg.PageSize),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, catalog.WithUserAgent(cfg.UserAgent))
	}

	return catalog.NewClient(cfg.BaseURL, cfg.Origin, opts...)
}

// buildCrawler wires the catalog client, the card database, and the
// image store into a crawler. The returned CardDB must be closed by the
// caller.
func buildCrawler(cfg *config.Config, logger *slog.Logger) (*crawler.Crawler, *database.CardDB, error) {
	client := newCatalogClient(cfg)

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Info("database opened", "path", db.Path())

	opts := []crawler.CrawlerOption{
		crawler.WithDelay(cfg.RequestDelay),
		crawler.WithRetries(cfg.Retries),
		crawler.WithOutput(os.Stdout),
		crawler.WithLogger(logger),
	}

	if !cfg.NoImages {
		store := images.NewStore(cfg.CardsDir,
			images.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			images.WithLogger(logger),
		)
		opts = append(opts, crawler.WithImages(store))
	}

	return crawler.NewCrawler(client, db, opts...), db, nil
}

// outputSummary writes the crawl summary in the requested format.
func outputSummary(cfg *config.Config, summary *model.CrawlSummary) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output)
	}

	_, err := writer.Write(summary)
	return err
}
