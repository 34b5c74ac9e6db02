package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uryuwr/cardgrab/internal/model"
)

// SimpleWriter outputs human-readable text summaries for the terminal.
//
// Design decision: plain ASCII formatting rather than ANSI colors so the
// summary pipes cleanly into files and other tools. The live progress
// lines during the crawl are the colorful part; the summary is the part
// operators copy into tickets.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the crawl summary in human-readable format.
func (w *SimpleWriter) Write(summary *model.CrawlSummary) (int, error) {
	var sb strings.Builder

	rule := strings.Repeat("=", 60)

	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n")
	sb.WriteString(modeHeading(summary))
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "  requested:      %d\n", summary.Requested)
	fmt.Fprintf(&sb, "  found:          %d  (new %d, updated %d)\n",
		summary.Found, summary.Created, summary.Updated)
	fmt.Fprintf(&sb, "  not found:      %d\n", summary.NotFound)
	if summary.ImageFailures > 0 {
		fmt.Fprintf(&sb, "  image failures: %d\n", summary.ImageFailures)
	}
	fmt.Fprintf(&sb, "  elapsed:        %s\n", summary.Elapsed.Round(time.Second))

	if len(summary.Failed) > 0 {
		sb.WriteString("\n  not matched: ")
		sb.WriteString(strings.Join(summary.Failed, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

// modeHeading builds the summary heading for the crawl mode.
func modeHeading(summary *model.CrawlSummary) string {
	switch summary.Mode {
	case model.ModeSet:
		return fmt.Sprintf("CRAWL SUMMARY - set %s", summary.Target)
	case model.ModeAll:
		return "CRAWL SUMMARY - full catalog"
	default:
		return "CRAWL SUMMARY - card numbers"
	}
}
