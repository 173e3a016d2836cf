// Package suggest provides the caller-side debounce for autocomplete input.
// Each keystroke schedules a delayed lookup; a newer keystroke cancels a
// pending one, and a response whose originating query is no longer the
// latest is dropped so stale in-flight results never reach the UI.
package suggest

import (
	"context"
	"sync"
	"time"

	"geopindrop/internal/models"
)

// DefaultDelay is how long input must stay quiet before a lookup fires.
const DefaultDelay = 300 * time.Millisecond

// LookupFunc performs the actual suggestion lookup.
type LookupFunc func(ctx context.Context, query string) ([]models.Suggestion, error)

// ApplyFunc receives the outcome of a lookup that is still current.
type ApplyFunc func(query string, suggestions []models.Suggestion, err error)

// Debouncer coalesces a stream of keystrokes into at most one in-flight
// lookup for the latest query. Safe for concurrent use.
type Debouncer struct {
	delay  time.Duration
	lookup LookupFunc
	apply  ApplyFunc

	mu     sync.Mutex
	latest string
	timer  *time.Timer
}

// NewDebouncer creates a debouncer firing lookup after delay and passing
// current results to apply. A non-positive delay falls back to DefaultDelay.
func NewDebouncer(delay time.Duration, lookup LookupFunc, apply ApplyFunc) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, lookup: lookup, apply: apply}
}

// Keystroke records the latest query and (re)schedules the delayed lookup,
// cancelling any lookup still pending for an older query.
func (d *Debouncer) Keystroke(ctx context.Context, query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.latest = query
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(ctx, query)
	})
}

// Stop cancels any pending lookup. Lookups already in flight still complete
// but their results are only applied if still current.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(ctx context.Context, query string) {
	if !d.isLatest(query) {
		return
	}

	suggestions, err := d.lookup(ctx, query)

	// The query may have been superseded while the request was in flight.
	if !d.isLatest(query) {
		return
	}

	d.apply(query, suggestions, err)
}

func (d *Debouncer) isLatest(query string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return query == d.latest
}
