package crawler

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces requests out to respect the catalog service's implicit
// rate limit. Every outbound request waits on the pacer first.
//
// Design decision: the inter-request delay is a policy object rather than
// a bare time.Sleep so tests can inject zero-delay pacing without code
// changes, and so the delay honors context cancellation.
type Pacer interface {
	// Wait blocks until the next request may be sent or the context is
	// cancelled.
	Wait(ctx context.Context) error
}

// delayPacer enforces a fixed inter-request delay via a token bucket with
// a burst of one: strictly one request per interval, matching the
// sequential crawl design.
type delayPacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer enforcing the given delay between requests.
// A non-positive delay yields a pacer that never waits.
func NewPacer(delay time.Duration) Pacer {
	if delay <= 0 {
		return NopPacer{}
	}
	return &delayPacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait implements Pacer.
func (p *delayPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NopPacer never waits. Tests use it to run crawls at full speed.
type NopPacer struct{}

// Wait implements Pacer. It only honors context cancellation.
func (NopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
