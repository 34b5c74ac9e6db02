package report

import (
	"encoding/json"
	"io"

	"github.com/uryuwr/cardgrab/internal/model"
)

// JSONWriter outputs crawl summaries in JSON format for tool integration.
//
// Design decision: standard encoding/json is sufficient here. The summary
// is a small flat struct, so a streaming or faster JSON library would buy
// nothing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the crawl summary as a single JSON document.
func (w *JSONWriter) Write(summary *model.CrawlSummary) (int, error) {
	var (
		data []byte
		err  error
	)

	if w.indent {
		data, err = json.MarshalIndent(summary, "", "  ")
	} else {
		data, err = json.Marshal(summary)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
