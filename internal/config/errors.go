package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: package-level sentinel errors rather than new error
// instances in Validate(). This allows callers to use errors.Is() for
// programmatic error handling while still providing human-readable
// messages.
var (
	// ErrEmptyBaseURL is returned when the catalog base URL is empty.
	ErrEmptyBaseURL = errors.New("catalog base URL must not be empty")

	// ErrEmptyOrigin is returned when the frontend origin is empty.
	// The catalog API rejects requests without Origin and Referer headers.
	ErrEmptyOrigin = errors.New("catalog origin must not be empty")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidPageSize is returned when the page size is not positive.
	ErrInvalidPageSize = errors.New("invalid page size: must be positive")

	// ErrInvalidRequestDelay is returned when the request delay is
	// negative. Use 0 to disable pacing between requests.
	ErrInvalidRequestDelay = errors.New("invalid request delay: must be non-negative")

	// ErrInvalidRetries is returned when the retry count is negative.
	// Use 0 to fail immediately on the first transport error.
	ErrInvalidRetries = errors.New("invalid retries: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
