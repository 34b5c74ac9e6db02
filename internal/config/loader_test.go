package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `
baseURL: https://example.com/api
origin: https://example.com
delay: 1s
pageSize: 50
retries: 5
cardsDir: /tmp/cards
noImages: true
`)

	cf, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}

	cfg := NewConfig()
	if err := cf.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if cfg.BaseURL != "https://example.com/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Origin != "https://example.com" {
		t.Errorf("Origin = %q", cfg.Origin)
	}
	if cfg.RequestDelay != time.Second {
		t.Errorf("RequestDelay = %v, want 1s", cfg.RequestDelay)
	}
	if cfg.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", cfg.PageSize)
	}
	if cfg.Retries != 5 {
		t.Errorf("Retries = %d, want 5", cfg.Retries)
	}
	if cfg.CardsDir != "/tmp/cards" {
		t.Errorf("CardsDir = %q", cfg.CardsDir)
	}
	if !cfg.NoImages {
		t.Error("NoImages should be true")
	}

	// Fields absent from the file keep their defaults.
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.DBDir != XDGDataDir() {
		t.Errorf("DBDir = %q, want default", cfg.DBDir)
	}
}

func TestLoadConfigFileNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfigFile() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "baseURL: [unclosed")
	if _, err := LoadConfigFile(path); err == nil {
		t.Error("LoadConfigFile() should fail on invalid YAML")
	}
}

func TestFileApplyInvalidDelay(t *testing.T) {
	t.Parallel()

	cf := &File{Delay: "not-a-duration"}
	if err := cf.Apply(NewConfig()); err == nil {
		t.Error("Apply() should fail on invalid delay string")
	}
}

func TestFileApplyInvalidTimeout(t *testing.T) {
	t.Parallel()

	cf := &File{Timeout: "fast"}
	if err := cf.Apply(NewConfig()); err == nil {
		t.Error("Apply() should fail on invalid timeout string")
	}
}

func TestFileApplyEmptyLeavesDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	want := *cfg

	if err := (&File{}).Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if *cfg != want {
		t.Errorf("Apply() with empty file changed config: got %+v, want %+v", *cfg, want)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path exists", func(t *testing.T) {
		path := writeTempConfig(t, "origin: https://example.com\n")
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		if got := FindConfigFile("/nonexistent/.cardgrab"); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})
}
