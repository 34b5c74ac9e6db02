package model

import "time"

// CrawlMode identifies which crawl strategy produced a summary.
type CrawlMode string

const (
	// ModeNumbers is the by-identifier strategy (explicit card numbers).
	ModeNumbers CrawlMode = "numbers"
	// ModeSet is the by-set strategy (one offer type).
	ModeSet CrawlMode = "set"
	// ModeAll is the full-catalog strategy.
	ModeAll CrawlMode = "all"
)

// CrawlSummary is the end-of-run report for a single crawl invocation.
// It is assembled from the crawl session counters and rendered by the
// report package in text or Markdown form.
type CrawlSummary struct {
	// Mode is the strategy that produced this summary.
	Mode CrawlMode `json:"mode"`

	// Target describes what was crawled: the resolved set display name
	// for ModeSet, empty for ModeAll, a short description for ModeNumbers.
	Target string `json:"target,omitempty"`

	// Requested is the number of identifiers requested (ModeNumbers) or
	// the catalog's reported total card count (ModeSet, ModeAll).
	Requested int `json:"requested"`

	// Found is the number of cards successfully fetched, mapped, and
	// upserted.
	Found int `json:"found"`

	// Created is how many upserts inserted a new record.
	Created int `json:"created"`

	// Updated is how many upserts updated an existing record.
	Updated int `json:"updated"`

	// NotFound is how many requested identifiers had no catalog match or
	// resolved to an empty detail payload.
	NotFound int `json:"not_found"`

	// ImageFailures is how many card images failed to download. The card
	// records themselves were still upserted.
	ImageFailures int `json:"image_failures"`

	// Failed lists the identifiers (card numbers or remote ids) that
	// could not be crawled, for operator follow-up.
	Failed []string `json:"failed,omitempty"`

	// StartedAt is when the crawl began.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is the total crawl duration.
	Elapsed time.Duration `json:"elapsed"`
}
