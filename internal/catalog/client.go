package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/uryuwr/cardgrab/internal/model"
)

// Default client settings. The header values mirror what the official
// card-list website sends; the service rejects requests without a matching
// Origin, so the client spoofs a browser rather than identifying itself.
const (
	// DefaultBaseURL is the catalog service base URL.
	DefaultBaseURL = "https://onepieceserve.windoent.com"

	// DefaultOrigin is the website origin the service expects.
	DefaultOrigin = "https://www.onepiece-cardgame.cn"

	// DefaultPageSize is the list page size the website uses.
	DefaultPageSize = 20

	// DefaultTimeout bounds each catalog request.
	DefaultTimeout = 30 * time.Second

	// defaultAccept is the Accept header sent with every request.
	defaultAccept = "application/json, text/plain, */*"

	// DefaultUserAgent is the browser User-Agent sent with every request.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/144.0.0.0 Safari/537.36"
)

// Client is a thin typed wrapper over the catalog service's three
// endpoints: paginated list, detail, and set catalog. Every call is a
// single attempt; transport failures surface as *TransportError and the
// caller owns the retry policy.
type Client struct {
	// httpClient performs the requests. Redirects are followed by default.
	httpClient *http.Client

	// baseURL is the service base URL without a trailing slash.
	baseURL string

	// origin is the spoofed website origin for the Origin/Referer headers.
	origin string

	// userAgent is the User-Agent header value.
	userAgent string

	// pageSize is the list page size.
	pageSize int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Tests use this to point the
// client at an httptest server with no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithPageSize sets the list page size.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient creates a catalog client for the service at baseURL,
// presenting itself as the website at origin. Empty arguments fall back to
// the defaults.
func NewClient(baseURL, origin string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if origin == "" {
		origin = DefaultOrigin
	}

	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    baseURL,
		origin:     origin,
		userAgent:  DefaultUserAgent,
		pageSize:   DefaultPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Filters narrows a list request. Zero values mean "no filter". Name
// doubles as an identifier search: passing a card number like "EB04-001"
// returns the matching cards.
type Filters struct {
	// Name is the free-text name filter (also matches card numbers).
	Name string

	// OfferType is the set display name filter.
	OfferType string

	// Color is the color filter.
	Color string

	// Kind is the card kind filter.
	Kind string
}

// ListPage fetches one page of the card list. Pages are 1-based.
func (c *Client) ListPage(ctx context.Context, page int, f Filters) (*PageResult, error) {
	params := url.Values{}
	params.Set("cardName", f.Name)
	params.Set("cardOfferType", f.OfferType)
	params.Set("cardColor", f.Color)
	params.Set("cardType", f.Kind)
	params.Set("cardCartograph", "")
	params.Set("subscript", "")
	params.Set("limit", strconv.Itoa(c.pageSize))
	params.Set("page", strconv.Itoa(page))

	reqURL := c.baseURL + "/cardList/cardlist/weblist?" + params.Encode()

	var resp listResponse
	if err := c.getJSON(ctx, "list", reqURL, &resp); err != nil {
		return nil, err
	}

	return &PageResult{
		Items:      resp.Page.List,
		TotalPage:  resp.Page.TotalPage,
		TotalCount: resp.Page.TotalCount,
	}, nil
}

// FetchDetail fetches the raw detail record for a remote id. It returns
// (nil, nil) when the service answers with a non-zero code or an empty
// payload: that is the valid "no such id" outcome, not an error.
func (c *Client) FetchDetail(ctx context.Context, id int64) (*RawDetail, error) {
	reqURL := fmt.Sprintf("%s/cardList/cardlist/webInfo/%d", c.baseURL, id)

	var resp detailResponse
	if err := c.getJSON(ctx, "detail", reqURL, &resp); err != nil {
		return nil, err
	}

	if resp.Code != 0 || resp.Info == nil {
		return nil, nil
	}
	return resp.Info, nil
}

// ListSets fetches the ordered set catalog.
func (c *Client) ListSets(ctx context.Context) ([]model.Set, error) {
	reqURL := c.baseURL + "/cardType/cardofferingtype/cachelist"

	var resp setsResponse
	if err := c.getJSON(ctx, "sets", reqURL, &resp); err != nil {
		return nil, err
	}

	sets := make([]model.Set, 0, len(resp.List))
	for _, e := range resp.List {
		sets = append(sets, model.Set{Name: e.Name})
	}
	return sets, nil
}

// getJSON performs a GET with the fixed header set and decodes the JSON
// response into out.
func (c *Client) getJSON(ctx context.Context, op, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &TransportError{Op: op, URL: reqURL, Err: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, URL: reqURL, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: op, URL: reqURL, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, URL: reqURL, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// setHeaders attaches the fixed header set the service's access check
// expects.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", defaultAccept)
	req.Header.Set("Origin", c.origin)
	req.Header.Set("Referer", c.origin+"/")
	req.Header.Set("User-Agent", c.userAgent)
}
