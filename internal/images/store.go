package images

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/uryuwr/cardgrab/internal/model"
)

// Default download settings.
const (
	// DefaultTimeout bounds each image download. Card scans run a few
	// hundred kilobytes, so 30 seconds is generous.
	DefaultTimeout = 30 * time.Second

	// defaultExt is used when the image URL carries no usable extension.
	defaultExt = "png"

	// maxImageSize caps a single download. Card art is far below this;
	// the cap only guards against a misbehaving response.
	maxImageSize = 20 * 1024 * 1024 // 20MB
)

// Store downloads card images into a destination directory.
type Store struct {
	// dir is the destination cards directory, created on first save.
	dir string

	// httpClient performs the downloads. Redirects are followed.
	httpClient *http.Client

	// logger receives per-image failure diagnostics.
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Store) {
		s.httpClient = hc
	}
}

// WithLogger sets the logger for download diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store writing into dir.
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{
		dir:        dir,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dir returns the destination cards directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save downloads the image at imageURL for the given card number and
// returns the stored filename (relative to the cards directory) and
// whether the download succeeded. Failures are logged, never returned:
// the caller records the miss and moves on.
func (s *Store) Save(ctx context.Context, imageURL, cardNumber string) (string, bool) {
	name := FileName(imageURL, cardNumber)

	body, err := s.download(ctx, imageURL)
	if err != nil {
		s.logger.Warn("image download failed", "url", imageURL, "error", err)
		return "", false
	}

	if err := os.MkdirAll(s.dir, 0750); err != nil {
		s.logger.Warn("failed to create cards directory", "dir", s.dir, "error", err)
		return "", false
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), body, 0644); err != nil { //nolint:gosec // Card art is public data
		s.logger.Warn("failed to write image file", "file", name, "error", err)
		return "", false
	}

	return name, true
}

// download fetches the image body, fully buffered.
func (s *Store) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, err
	}
	return body, nil
}

// FileName derives the local filename for a card image. Primary art is
// stored as "{cardNumber}.{ext}". When the URL's filename encodes a
// variant suffix ("OP01-120_2"), the full variant number names the file so
// alternate arts do not overwrite the base image.
func FileName(imageURL, cardNumber string) string {
	name := cardNumber
	if extracted := model.CardNumberFromImageURL(imageURL); extracted != "" && model.HasVariantSuffix(extracted) {
		name = extracted
	}
	return name + "." + fileExt(imageURL)
}

// fileExt extracts the file extension from an image URL, defaulting to
// "png" when the URL has none.
func fileExt(imageURL string) string {
	// Drop any query string before looking at the path.
	if i := strings.IndexByte(imageURL, '?'); i >= 0 {
		imageURL = imageURL[:i]
	}
	segment := imageURL
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	i := strings.LastIndex(segment, ".")
	if i < 0 || i == len(segment)-1 {
		return defaultExt
	}
	ext := strings.ToLower(segment[i+1:])
	if len(ext) > 4 {
		return defaultExt
	}
	return ext
}
