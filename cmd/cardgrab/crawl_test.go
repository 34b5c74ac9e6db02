package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBuildConfigFromFlags(t *testing.T) {
	cmd := NewFetchCmd()
	if err := cmd.ParseFlags([]string{
		"--delay", "1s",
		"--retries", "4",
		"--no-images",
		"--cards-dir", "/tmp/cards",
	}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if cfg.RequestDelay != time.Second {
		t.Errorf("RequestDelay = %v, want 1s", cfg.RequestDelay)
	}
	if cfg.Retries != 4 {
		t.Errorf("Retries = %d, want 4", cfg.Retries)
	}
	if !cfg.NoImages {
		t.Error("NoImages should be true")
	}
	if cfg.CardsDir != "/tmp/cards" {
		t.Errorf("CardsDir = %q", cfg.CardsDir)
	}
}

func TestBuildConfigFlagOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".cardgrab")
	if err := os.WriteFile(configPath, []byte("delay: 2s\nretries: 9\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cmd := NewSetCmd()
	if err := cmd.ParseFlags([]string{
		"-c", configPath,
		"--delay", "500ms",
	}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	// Flag wins over the config file.
	if cfg.RequestDelay != 500*time.Millisecond {
		t.Errorf("RequestDelay = %v, want 500ms", cfg.RequestDelay)
	}
	// File wins over the default.
	if cfg.Retries != 9 {
		t.Errorf("Retries = %d, want 9", cfg.Retries)
	}
}

func TestBuildConfigExplicitFileMissing(t *testing.T) {
	cmd := NewAllCmd()
	if err := cmd.ParseFlags([]string{"-c", "/nonexistent/.cardgrab"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if _, err := buildConfig(cmd); err == nil {
		t.Error("buildConfig() should fail for missing explicit config file")
	}
}

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(true)
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("expected debug level enabled in verbose mode")
		}
	})

	t.Run("quiet suppresses info", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(false)
		if logger.Enabled(context.Background(), slog.LevelInfo) {
			t.Error("expected info level disabled in quiet mode")
		}
		if !logger.Enabled(context.Background(), slog.LevelWarn) {
			t.Error("expected warn level enabled in quiet mode")
		}
	})
}

func TestAddCrawlFlags(t *testing.T) {
	t.Parallel()

	cmd := NewFetchCmd()
	for _, name := range []string{
		"delay", "timeout", "retries",
		"cards-dir", "db-dir", "no-images",
		"config", "json", "markdown", "output",
	} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag %q", name)
		}
	}
}

func TestAllCmdHasYesFlag(t *testing.T) {
	t.Parallel()

	flag := NewAllCmd().Flags().Lookup("yes")
	if flag == nil {
		t.Fatal("expected yes flag")
	}
	if flag.Shorthand != "y" {
		t.Errorf("expected shorthand 'y', got %q", flag.Shorthand)
	}
}
