package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		url        string
		cardNumber string
		want       string
	}{
		{
			name:       "primary art uses card number",
			url:        "https://img.example/1769764571457EB04-001.png",
			cardNumber: "EB04-001",
			want:       "EB04-001.png",
		},
		{
			name:       "variant art keeps variant suffix",
			url:        "https://img.example/1769764571457OP01-120_2.png",
			cardNumber: "OP01-120",
			want:       "OP01-120_2.png",
		},
		{
			name:       "jpg extension preserved",
			url:        "https://img.example/1674893285473P-006.jpg",
			cardNumber: "P-006",
			want:       "P-006.jpg",
		},
		{
			name:       "missing extension falls back to png",
			url:        "https://img.example/noext",
			cardNumber: "ST01-001",
			want:       "ST01-001.png",
		},
		{
			name:       "query string ignored for extension",
			url:        "https://img.example/1EB04-001.webp?size=large",
			cardNumber: "EB04-001",
			want:       "EB04-001.webp",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileName(tt.url, tt.cardNumber); got != tt.want {
				t.Errorf("FileName(%q, %q) = %q, want %q", tt.url, tt.cardNumber, got, tt.want)
			}
		})
	}
}

func TestStoreSave(t *testing.T) {
	t.Parallel()

	payload := []byte("fake-png-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)

	// The destination directory does not exist yet; Save must create it.
	dir := filepath.Join(t.TempDir(), "cards")
	store := NewStore(dir, WithHTTPClient(srv.Client()))

	name, ok := store.Save(context.Background(), srv.URL+"/1EB04-001.png", "EB04-001")
	if !ok {
		t.Fatal("expected save to succeed")
	}
	if name != "EB04-001.png" {
		t.Errorf("saved name = %q, want EB04-001.png", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read saved image: %v", err)
	}
	if string(data) != string(payload) {
		t.Error("saved bytes differ from served bytes")
	}
}

func TestStoreSaveFailureLeavesNoFile(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	store := NewStore(dir, WithHTTPClient(srv.Client()))

	name, ok := store.Save(context.Background(), srv.URL+"/1EB04-001.png", "EB04-001")
	if ok {
		t.Fatal("expected save to fail for 404 response")
	}
	if name != "" {
		t.Errorf("failed save returned name %q", name)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files after failed download, found %d", len(entries))
	}
}

func TestStoreSaveUnreachableServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	store := NewStore(t.TempDir())

	if _, ok := store.Save(context.Background(), url+"/x.png", "EB04-001"); ok {
		t.Fatal("expected save to fail for unreachable server")
	}
}
