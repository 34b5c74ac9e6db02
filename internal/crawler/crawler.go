package crawler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/uryuwr/cardgrab/internal/catalog"
	"github.com/uryuwr/cardgrab/internal/database"
	"github.com/uryuwr/cardgrab/internal/model"
)

// CatalogClient is the remote catalog surface the crawler consumes.
// *catalog.Client satisfies it; tests substitute scripted fakes.
type CatalogClient interface {
	// ListPage fetches one page of the card list.
	ListPage(ctx context.Context, page int, f catalog.Filters) (*catalog.PageResult, error)

	// FetchDetail fetches a raw detail record, (nil, nil) when absent.
	FetchDetail(ctx context.Context, id int64) (*catalog.RawDetail, error)

	// ListSets fetches the ordered set catalog.
	ListSets(ctx context.Context) ([]model.Set, error)
}

// CardStore persists canonical cards. *database.CardDB satisfies it.
type CardStore interface {
	// UpsertCard inserts or updates a card keyed by its card number.
	UpsertCard(ctx context.Context, card *model.Card) (database.UpsertResult, error)
}

// ImageStore downloads card art. *images.Store satisfies it.
type ImageStore interface {
	// Save downloads an image, returning the stored filename and whether
	// the download succeeded.
	Save(ctx context.Context, imageURL, cardNumber string) (string, bool)
}

// Crawler drives the crawl strategies against a catalog client, a card
// store, and an optional image store.
type Crawler struct {
	// catalog is the remote catalog client.
	catalog CatalogClient

	// store persists the mapped cards.
	store CardStore

	// images downloads card art. Nil disables downloads entirely.
	images ImageStore

	// pacer spaces the outbound requests.
	pacer Pacer

	// delay is the nominal inter-request delay, used for the duration
	// estimate printed before a full-catalog crawl.
	delay time.Duration

	// retries is the extra attempts allowed per transport failure.
	retries int

	// out receives the operator-facing progress lines.
	out io.Writer

	// logger receives diagnostics.
	logger *slog.Logger

	// markNew, markUpdated, markMiss colorize progress markers.
	markNew     func(a ...interface{}) string
	markUpdated func(a ...interface{}) string
	markMiss    func(a ...interface{}) string
}

// CrawlerOption configures a Crawler.
type CrawlerOption func(*Crawler)

// WithImages enables image downloads through the given store.
func WithImages(store ImageStore) CrawlerOption {
	return func(c *Crawler) {
		c.images = store
	}
}

// WithDelay sets the inter-request delay. It replaces the pacer with one
// enforcing the delay and feeds the full-catalog duration estimate.
func WithDelay(delay time.Duration) CrawlerOption {
	return func(c *Crawler) {
		c.delay = delay
		c.pacer = NewPacer(delay)
	}
}

// WithPacer overrides the pacer directly. Tests use NopPacer.
func WithPacer(p Pacer) CrawlerOption {
	return func(c *Crawler) {
		c.pacer = p
	}
}

// WithRetries sets how many extra attempts a transport failure gets
// before the item is skipped (detail) or the run aborts (list).
func WithRetries(n int) CrawlerOption {
	return func(c *Crawler) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithOutput sets the destination for progress lines.
func WithOutput(w io.Writer) CrawlerOption {
	return func(c *Crawler) {
		c.out = w
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) CrawlerOption {
	return func(c *Crawler) {
		c.logger = logger
	}
}

// DefaultRequestDelay is the inter-request delay used when none is
// configured. 300ms matches what the official website tolerates without
// throttling.
const DefaultRequestDelay = 300 * time.Millisecond

// DefaultRetries is the default extra-attempt budget per transport
// failure.
const DefaultRetries = 2

// NewCrawler creates a Crawler over the given catalog client and card
// store.
func NewCrawler(cat CatalogClient, store CardStore, opts ...CrawlerOption) *Crawler {
	c := &Crawler{
		catalog:     cat,
		store:       store,
		pacer:       NewPacer(DefaultRequestDelay),
		delay:       DefaultRequestDelay,
		retries:     DefaultRetries,
		out:         io.Discard,
		logger:      slog.Default(),
		markNew:     color.New(color.FgGreen).SprintFunc(),
		markUpdated: color.New(color.FgCyan).SprintFunc(),
		markMiss:    color.New(color.FgYellow).SprintFunc(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchByNumbers crawls the explicitly requested card numbers. Each number
// is searched by exact name, the result page is scanned for an item whose
// extracted base number equals the request, and at most one match is
// promoted to the detail pipeline. Unmatched numbers are recorded, never
// fatal.
func (c *Crawler) FetchByNumbers(ctx context.Context, numbers []string) (*model.CrawlSummary, error) {
	if len(numbers) == 0 {
		return nil, ErrNoNumbers
	}

	session := NewSession()
	c.printf("searching %d card(s)\n", len(numbers))

	for _, number := range numbers {
		number = strings.ToUpper(strings.TrimSpace(number))
		if number == "" {
			continue
		}

		page, err := c.listPage(ctx, 1, catalog.Filters{Name: number})
		if err != nil {
			return session.Summary(model.ModeNumbers, "", len(numbers)), err
		}

		item, ok := matchItem(page.Items, number)
		if !ok {
			session.NotFound++
			session.RecordFailed(number)
			c.printf("  %s %s: no exact match in search results\n", c.markMiss("miss"), number)
			continue
		}

		if err := c.processItem(ctx, session, item); err != nil {
			return session.Summary(model.ModeNumbers, "", len(numbers)), err
		}
	}

	return session.Summary(model.ModeNumbers, "", len(numbers)), nil
}

// matchItem scans a result page for the first item whose image filename
// decodes to the requested base card number.
func matchItem(items []catalog.ListItem, number string) (catalog.ListItem, bool) {
	for _, item := range items {
		extracted := model.CardNumberFromImageURL(item.CardImg)
		if extracted == "" {
			continue
		}
		if model.BaseNumber(extracted) == number {
			return item, true
		}
	}
	return catalog.ListItem{}, false
}

// FetchSet crawls every card of one set. The set code is resolved against
// the remote set catalog first; an unmatched code returns ErrSetNotFound
// before any paging begins.
func (c *Crawler) FetchSet(ctx context.Context, setCode string) (*model.CrawlSummary, error) {
	session := NewSession()

	sets, err := c.listSets(ctx)
	if err != nil {
		return nil, err
	}

	set, ok := model.MatchSetName(sets, setCode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, setCode)
	}

	c.printf("crawling set: %s\n", set.Name)

	total, err := c.pageLoop(ctx, session, catalog.Filters{OfferType: set.Name})
	summary := session.Summary(model.ModeSet, set.Name, total)
	return summary, err
}

// FetchAll crawls the entire catalog. It reports an estimated duration
// derived from the catalog's total card count and the configured delay
// before the main loop starts.
func (c *Crawler) FetchAll(ctx context.Context) (*model.CrawlSummary, error) {
	session := NewSession()

	first, err := c.listPage(ctx, 1, catalog.Filters{})
	if err != nil {
		return nil, err
	}

	estimate := time.Duration(first.TotalCount) * c.delay
	c.printf("catalog holds %d cards across %d pages, estimated duration %s\n",
		first.TotalCount, first.TotalPage, estimate.Round(time.Second))

	total, err := c.pageLoop(ctx, session, catalog.Filters{})
	if total == 0 {
		total = first.TotalCount
	}
	summary := session.Summary(model.ModeAll, "", total)
	return summary, err
}

// pageLoop pages through the list endpoint with the given filters until a
// page comes back empty or the page index reaches the reported total,
// whichever happens first. The double guard covers both off-by-one page
// counts and unexpected empty pages.
func (c *Crawler) pageLoop(ctx context.Context, session *Session, filters catalog.Filters) (int, error) {
	page := 1
	totalCount := 0

	for {
		result, err := c.listPage(ctx, page, filters)
		if err != nil {
			return totalCount, err
		}
		if totalCount == 0 {
			totalCount = result.TotalCount
		}

		if len(result.Items) == 0 {
			break
		}

		c.printf("page %d/%d (%d cards total)\n", page, result.TotalPage, result.TotalCount)

		for _, item := range result.Items {
			if !session.MarkSeen(item.ID) {
				continue
			}
			if err := c.processItem(ctx, session, item); err != nil {
				return totalCount, err
			}
		}

		if page >= result.TotalPage {
			break
		}
		page++
	}

	return totalCount, nil
}

// processItem runs the shared inner pipeline for one list item: fetch
// detail, map, download image, upsert. Missing details and failed images
// are per-item outcomes; only store failures and context cancellation
// propagate.
func (c *Crawler) processItem(ctx context.Context, session *Session, item catalog.ListItem) error {
	raw, err := c.fetchDetail(ctx, item.ID)
	if err != nil {
		if isFatal(err) {
			return err
		}
		session.RecordFailed(fmt.Sprintf("id=%d", item.ID))
		c.logger.Warn("detail fetch failed, skipping item", "id", item.ID, "error", err)
		return nil
	}
	if raw == nil {
		session.NotFound++
		session.RecordFailed(fmt.Sprintf("id=%d", item.ID))
		c.printf("  %s id=%d: empty detail payload\n", c.markMiss("miss"), item.ID)
		return nil
	}

	card := catalog.MapDetail(raw)

	imageURL := item.CardImg
	if imageURL == "" {
		imageURL = raw.CardImg
	}
	if c.images != nil && imageURL != "" {
		if local, ok := c.images.Save(ctx, imageURL, card.CardNumber); ok {
			card.ImageLocal = local
		} else {
			session.ImageFailures++
		}
	}

	result, err := c.store.UpsertCard(ctx, card)
	if err != nil {
		return fmt.Errorf("failed to store card %s: %w", card.CardNumber, err)
	}

	session.Found++
	switch result {
	case database.ResultCreated:
		session.Created++
		c.printf("  %s %-10s %s  %s %s %s\n",
			c.markNew("new"), card.CardNumber, card.NameCN, card.Kind, card.Color, card.Rarity)
	case database.ResultUpdated:
		session.Updated++
		c.printf("  %s %-10s %s  %s %s %s\n",
			c.markUpdated("upd"), card.CardNumber, card.NameCN, card.Kind, card.Color, card.Rarity)
	}

	return nil
}

// listPage fetches one list page with pacing and the bounded retry. An
// exhausted retry budget on a list fetch aborts the run: without the page
// there is nothing left to drive.
func (c *Crawler) listPage(ctx context.Context, page int, filters catalog.Filters) (*catalog.PageResult, error) {
	var result *catalog.PageResult
	err := c.withRetry(ctx, func() error {
		var err error
		result, err = c.catalog.ListPage(ctx, page, filters)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch list page %d: %w", page, err)
	}
	return result, nil
}

// fetchDetail fetches a detail record with pacing and the bounded retry.
func (c *Crawler) fetchDetail(ctx context.Context, id int64) (*catalog.RawDetail, error) {
	var raw *catalog.RawDetail
	err := c.withRetry(ctx, func() error {
		var err error
		raw, err = c.catalog.FetchDetail(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// listSets fetches the set catalog with pacing and the bounded retry.
func (c *Crawler) listSets(ctx context.Context) ([]model.Set, error) {
	var sets []model.Set
	err := c.withRetry(ctx, func() error {
		var err error
		sets, err = c.catalog.ListSets(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch set catalog: %w", err)
	}
	return sets, nil
}

// withRetry paces and runs fn, retrying transport failures up to the
// configured budget. Context cancellation always stops the attempts.
func (c *Crawler) withRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if err := c.pacer.Wait(ctx); err != nil {
			return err
		}
		if err := fn(); err != nil {
			lastErr = err
			var te *catalog.TransportError
			if errors.As(err, &te) && ctx.Err() == nil {
				c.logger.Debug("transport failure, retrying", "attempt", attempt+1, "error", err)
				continue
			}
			return err
		}
		return nil
	}
	return lastErr
}

// isFatal reports whether an error from the inner pipeline must abort the
// run rather than be recorded per item.
func isFatal(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// printf writes an operator-facing progress line.
func (c *Crawler) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
