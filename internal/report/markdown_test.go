package report

import (
	"strings"
	"testing"
)

func TestMarkdownWriterWrite(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	w := NewMarkdownWriter(&sb)

	n, err := w.Write(testSummary())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n == 0 {
		t.Error("Write() returned 0 bytes")
	}

	got := sb.String()
	for _, want := range []string{
		"# Card Crawl Report",
		"## Results",
		"Requested",
		"Not found",
		"Image failures",
		"## Unmatched Identifiers",
		"ZZ99-001",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Write() output missing %q\noutput:\n%s", want, got)
		}
	}
}

func TestMarkdownWriterWriteNoFailures(t *testing.T) {
	t.Parallel()

	summary := testSummary()
	summary.Failed = nil

	var sb strings.Builder
	if _, err := NewMarkdownWriter(&sb).Write(summary); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if strings.Contains(sb.String(), "Unmatched Identifiers") {
		t.Errorf("Write() output should omit unmatched section\noutput:\n%s", sb.String())
	}
}
