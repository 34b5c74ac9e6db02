package crawler

import (
	"time"

	"github.com/uryuwr/cardgrab/internal/model"
)

// Session accumulates the state of one crawl invocation: outcome counters,
// the identifiers that failed, and the remote ids already handled.
//
// Design decision: the deduplication set is session state, not a package
// variable. Each strategy call gets its own Session, so independent crawls
// never share identity caches and tests stay deterministic.
type Session struct {
	// Found counts cards successfully fetched, mapped, and upserted.
	Found int

	// Created counts upserts that inserted a new record.
	Created int

	// Updated counts upserts that refreshed an existing record.
	Updated int

	// NotFound counts requested identifiers with no catalog match or an
	// empty detail payload.
	NotFound int

	// ImageFailures counts images that failed to download. The card
	// records were still upserted.
	ImageFailures int

	// failed lists the identifiers that could not be crawled.
	failed []string

	// seen holds the remote ids already processed in this session.
	seen map[int64]struct{}

	// startedAt is when the session began.
	startedAt time.Time
}

// NewSession creates an empty session starting now.
func NewSession() *Session {
	return &Session{
		seen:      make(map[int64]struct{}),
		startedAt: time.Now(),
	}
}

// MarkSeen records a remote id and reports whether it was new to this
// session. Duplicate list entries (the catalog repeats items across page
// boundaries at times) are processed only once.
func (s *Session) MarkSeen(id int64) bool {
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	return true
}

// RecordFailed remembers an identifier that could not be crawled.
func (s *Session) RecordFailed(id string) {
	s.failed = append(s.failed, id)
}

// Failed returns the identifiers that could not be crawled, in the order
// they failed.
func (s *Session) Failed() []string {
	return s.failed
}

// Summary converts the session into the end-of-run report.
func (s *Session) Summary(mode model.CrawlMode, target string, requested int) *model.CrawlSummary {
	return &model.CrawlSummary{
		Mode:          mode,
		Target:        target,
		Requested:     requested,
		Found:         s.Found,
		Created:       s.Created,
		Updated:       s.Updated,
		NotFound:      s.NotFound,
		ImageFailures: s.ImageFailures,
		Failed:        s.failed,
		StartedAt:     s.startedAt,
		Elapsed:       time.Since(s.startedAt),
	}
}
