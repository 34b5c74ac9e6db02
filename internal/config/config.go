package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/uryuwr/cardgrab/internal/catalog"
)

// Default configuration values.
// The network defaults mirror what the card catalog's own web frontend
// sends, because the API rejects requests without the expected Origin
// and Referer headers.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "cardgrab"

	// DefaultTimeout is the per-request HTTP timeout for both catalog
	// calls and image downloads. The API usually answers in well under a
	// second; 30 seconds covers cold CDN edges without hanging forever.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestDelay is the pause between consecutive catalog
	// requests. This is a politeness setting: the catalog is a small
	// fan-run-adjacent service and a sequential crawl at ~3 requests per
	// second has proven safe. Can be adjusted via the --delay CLI flag.
	DefaultRequestDelay = 300 * time.Millisecond

	// DefaultPageSize is how many list entries to request per page.
	// 20 matches what the catalog's web frontend uses; larger values
	// work but have not been exercised against the real API.
	DefaultPageSize = 20

	// DefaultRetries is how many times a failed catalog request is
	// retried before the card is skipped (detail fetch) or the run is
	// aborted (list fetch).
	DefaultRetries = 2
)

// Config holds all configuration options for cardgrab.
// This struct is populated from defaults, then the optional config file,
// then CLI flags, and passed through the application via dependency
// injection rather than global state.
//
// Design decision: a single flat struct instead of nested sub-structs.
// The number of options is manageable, and nesting would add complexity
// without significant benefit.
type Config struct {
	// BaseURL is the root URL of the card catalog API.
	BaseURL string

	// Origin is the web frontend origin sent in the Origin and Referer
	// headers. The API checks these, so changing Origin without also
	// changing BaseURL generally breaks requests.
	Origin string

	// UserAgent is the User-Agent header sent with every request.
	// Empty means the catalog client's built-in default.
	UserAgent string

	// PageSize is the number of entries per catalog list page.
	PageSize int

	// RequestDelay is the pause between consecutive catalog requests.
	// Zero disables pacing entirely; use with care.
	RequestDelay time.Duration

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// Retries is how many times a transport failure is retried before
	// giving up on that request.
	Retries int

	// CardsDir is the directory where card images are saved.
	// Defaults to <XDG data dir>/cards.
	CardsDir string

	// DBDir is the directory holding the SQLite card database.
	// Defaults to the XDG data directory.
	DBDir string

	// NoImages skips image downloads entirely. Card records are still
	// fetched and stored.
	NoImages bool

	// AssumeYes skips the interactive confirmation before a full-catalog
	// crawl. Intended for scripted runs.
	AssumeYes bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON summary output instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown summary output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the crawl summary.
	// When set, the summary is written to this file instead of stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .cardgrab in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work against the
// live catalog. Users can override specific values after creation.
//
// Design decision: a constructor function instead of relying on zero
// values, because most defaults are non-zero and the constructor doubles
// as documentation of what they are.
func NewConfig() *Config {
	return &Config{
		BaseURL:      catalog.DefaultBaseURL,
		Origin:       catalog.DefaultOrigin,
		PageSize:     DefaultPageSize,
		RequestDelay: DefaultRequestDelay,
		Timeout:      DefaultTimeout,
		Retries:      DefaultRetries,
		CardsDir:     filepath.Join(XDGDataDir(), "cards"),
		DBDir:        XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for cardgrab.
// On Linux: ~/.local/share/cardgrab
// On macOS: ~/Library/Application Support/cardgrab
// On Windows: %LOCALAPPDATA%\cardgrab
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for cardgrab.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrEmptyBaseURL
	}

	if c.Origin == "" {
		return ErrEmptyOrigin
	}

	// Zero timeout would cause immediate request failures
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.PageSize <= 0 {
		return ErrInvalidPageSize
	}

	// Negative delay is invalid; zero means no pacing
	if c.RequestDelay < 0 {
		return ErrInvalidRequestDelay
	}

	if c.Retries < 0 {
		return ErrInvalidRetries
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
