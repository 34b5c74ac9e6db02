package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".cardgrab"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .cardgrab configuration file.
// All fields are optional; absent fields leave the corresponding Config
// value untouched. Pointer types distinguish "not set" from a zero value,
// which matters for booleans and counts.
type File struct {
	// BaseURL overrides the catalog API base URL.
	BaseURL string `yaml:"baseURL,omitempty"`

	// Origin overrides the frontend origin sent in request headers.
	Origin string `yaml:"origin,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// PageSize overrides the catalog list page size.
	PageSize *int `yaml:"pageSize,omitempty"`

	// Delay overrides the pause between requests, as a Go duration
	// string such as "300ms" or "1s".
	Delay string `yaml:"delay,omitempty"`

	// Timeout overrides the per-request HTTP timeout, as a Go duration
	// string such as "30s".
	Timeout string `yaml:"timeout,omitempty"`

	// Retries overrides the transport retry count.
	Retries *int `yaml:"retries,omitempty"`

	// CardsDir overrides the image download directory.
	CardsDir string `yaml:"cardsDir,omitempty"`

	// DBDir overrides the database directory.
	DBDir string `yaml:"dbDir,omitempty"`

	// NoImages disables image downloads when true.
	NoImages *bool `yaml:"noImages,omitempty"`
}

// LoadConfigFile loads configuration overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply merges the file's overrides into the given config.
// Only fields present in the file are applied; everything else keeps
// its current value. Duration strings are validated here so a typo in
// the config file fails loudly instead of silently crawling at the
// wrong rate.
func (cf *File) Apply(cfg *Config) error {
	if cf.BaseURL != "" {
		cfg.BaseURL = cf.BaseURL
	}
	if cf.Origin != "" {
		cfg.Origin = cf.Origin
	}
	if cf.UserAgent != "" {
		cfg.UserAgent = cf.UserAgent
	}
	if cf.PageSize != nil {
		cfg.PageSize = *cf.PageSize
	}
	if cf.Delay != "" {
		d, err := time.ParseDuration(cf.Delay)
		if err != nil {
			return fmt.Errorf("invalid delay in config file: %w", err)
		}
		cfg.RequestDelay = d
	}
	if cf.Timeout != "" {
		d, err := time.ParseDuration(cf.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in config file: %w", err)
		}
		cfg.Timeout = d
	}
	if cf.Retries != nil {
		cfg.Retries = *cf.Retries
	}
	if cf.CardsDir != "" {
		cfg.CardsDir = cf.CardsDir
	}
	if cf.DBDir != "" {
		cfg.DBDir = cf.DBDir
	}
	if cf.NoImages != nil {
		cfg.NoImages = *cf.NoImages
	}
	return nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .cardgrab in the current directory
// 3. Look for .cardgrab in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
