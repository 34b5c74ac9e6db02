package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/uryuwr/cardgrab/internal/model"
)

func TestJSONWriterWrite(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	w := NewJSONWriter(&sb)

	n, err := w.Write(testSummary())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n == 0 {
		t.Error("Write() returned 0 bytes")
	}

	var decoded model.CrawlSummary
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Mode != model.ModeNumbers {
		t.Errorf("decoded mode = %q, want %q", decoded.Mode, model.ModeNumbers)
	}
	if decoded.Found != 2 {
		t.Errorf("decoded found = %d, want 2", decoded.Found)
	}
	if len(decoded.Failed) != 1 || decoded.Failed[0] != "ZZ99-001" {
		t.Errorf("decoded failed = %v, want [ZZ99-001]", decoded.Failed)
	}
}

func TestJSONWriterWritePretty(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if _, err := NewJSONWriter(&sb, WithPrettyPrint()).Write(testSummary()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got := sb.String()
	if !strings.Contains(got, "\n  \"mode\"") {
		t.Errorf("Write() output is not indented:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Write() output missing trailing newline")
	}
}
