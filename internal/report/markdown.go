package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/uryuwr/cardgrab/internal/model"
)

// MarkdownWriter outputs crawl summaries in Markdown format, designed for
// sharing and archiving crawl runs.
//
// Design decision: we use the nao1215/markdown library for fluent,
// type-safe markdown generation (tables, lists, alerts) instead of string
// templating.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the crawl summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.CrawlSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Card Crawl Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Mode", string(summary.Mode)},
			{"Target", targetCell(summary)},
			{"Started", summary.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Elapsed", summary.Elapsed.Round(time.Second).String()},
		},
	})
	md.PlainText("")

	md.H2("Results")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Outcome", "Count"},
		Rows: [][]string{
			{"Requested", strconv.Itoa(summary.Requested)},
			{"Found", strconv.Itoa(summary.Found)},
			{"New", strconv.Itoa(summary.Created)},
			{"Updated", strconv.Itoa(summary.Updated)},
			{"Not found", strconv.Itoa(summary.NotFound)},
			{"Image failures", strconv.Itoa(summary.ImageFailures)},
		},
	})
	md.PlainText("")

	if len(summary.Failed) > 0 {
		md.H2("Unmatched Identifiers")
		md.PlainText("")
		md.BulletList(summary.Failed...)
		md.PlainText("")
		md.Warningf("%d identifier(s) could not be crawled; retry them individually.", len(summary.Failed))
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// targetCell renders the target column for the mode.
func targetCell(summary *model.CrawlSummary) string {
	if summary.Target == "" {
		return "-"
	}
	return summary.Target
}
