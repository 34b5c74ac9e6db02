package report

import (
	"strings"
	"testing"
	"time"

	"github.com/uryuwr/cardgrab/internal/model"
)

func testSummary() *model.CrawlSummary {
	return &model.CrawlSummary{
		Mode:      model.ModeNumbers,
		Requested: 3,
		Found:     2,
		Created:   1,
		Updated:   1,
		NotFound:  1,
		Failed:    []string{"ZZ99-001"},
		StartedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Elapsed:   3200 * time.Millisecond,
	}
}

func TestSimpleWriterWrite(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	w := NewSimpleWriter(&sb)

	n, err := w.Write(testSummary())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n == 0 {
		t.Error("Write() returned 0 bytes")
	}

	got := sb.String()
	for _, want := range []string{
		"CRAWL SUMMARY - card numbers",
		"requested:      3",
		"found:          2  (new 1, updated 1)",
		"not found:      1",
		"elapsed:        3s",
		"not matched: ZZ99-001",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Write() output missing %q\noutput:\n%s", want, got)
		}
	}

	// No image failures recorded, so the line stays hidden.
	if strings.Contains(got, "image failures") {
		t.Errorf("Write() output should omit image failures line\noutput:\n%s", got)
	}
}

func TestSimpleWriterWriteSetMode(t *testing.T) {
	t.Parallel()

	summary := testSummary()
	summary.Mode = model.ModeSet
	summary.Target = "EB04"
	summary.ImageFailures = 2
	summary.Failed = nil

	var sb strings.Builder
	if _, err := NewSimpleWriter(&sb).Write(summary); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got := sb.String()
	if !strings.Contains(got, "CRAWL SUMMARY - set EB04") {
		t.Errorf("Write() output missing set heading\noutput:\n%s", got)
	}
	if !strings.Contains(got, "image failures: 2") {
		t.Errorf("Write() output missing image failures line\noutput:\n%s", got)
	}
	if strings.Contains(got, "not matched") {
		t.Errorf("Write() output should omit not matched line\noutput:\n%s", got)
	}
}

func TestSimpleWriterWriteAllMode(t *testing.T) {
	t.Parallel()

	summary := testSummary()
	summary.Mode = model.ModeAll

	var sb strings.Builder
	if _, err := NewSimpleWriter(&sb).Write(summary); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !strings.Contains(sb.String(), "CRAWL SUMMARY - full catalog") {
		t.Errorf("Write() output missing full catalog heading\noutput:\n%s", sb.String())
	}
}
