package report

import (
	"io"

	"github.com/uryuwr/cardgrab/internal/model"
)

// Writer defines the interface for crawl summary output.
// Implementations render summaries in various formats.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *model.CrawlSummary) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
