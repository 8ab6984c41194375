// Package search converts a stream of text-input changes into a
// de-duplicated, rate-limited sequence of search requests: a classic
// debounce with a fixed quiescence window, layered on the load controller
// so late responses to superseded queries are discarded.
package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mochilaapp/mochila-client/internal/loadable"
)

// DefaultDebounce matches the quiescence window users expect from the
// search field.
const DefaultDebounce = 500 * time.Millisecond

// Fetch runs one search request for a settled query.
type Fetch[T any] func(ctx context.Context, query string) (T, error)

// Controller debounces free-text input into search loads.
//
// Each keystroke cancels and restarts the single pending timer. A query
// that empties before the timer fires cancels the pending request and
// clears results synchronously without touching the network.
type Controller[T any] struct {
	mu       sync.Mutex
	debounce time.Duration
	timer    *time.Timer
	query    string
	closed   bool

	loader *loadable.Controller[T]
}

// New creates a search controller. debounce <= 0 falls back to
// DefaultDebounce.
func New[T any](fetch Fetch[T], debounce time.Duration, logger *slog.Logger) *Controller[T] {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	c := &Controller[T]{debounce: debounce}
	// The inner fetch always reads the latest settled query, so a load
	// issued for an old keystroke can never search a stale string.
	c.loader = loadable.New(func(ctx context.Context) (T, error) {
		return fetch(ctx, c.Query())
	}, logger)
	c.loader.Attach()
	return c
}

// Query returns the latest input text for controlled-input echo.
func (c *Controller[T]) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// State returns the current search result state. Idle means no active
// search (empty input).
func (c *Controller[T]) State() loadable.State[T] {
	return c.loader.State()
}

// Subscribe registers fn on result-state transitions.
func (c *Controller[T]) Subscribe(fn func(loadable.State[T])) (unsubscribe func()) {
	return c.loader.Subscribe(fn)
}

// SetQuery records a keystroke. The latest text is visible immediately via
// Query; the search request waits for the quiescence window.
func (c *Controller[T]) SetQuery(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.query = text

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if strings.TrimSpace(text) == "" {
		c.mu.Unlock()
		// Empty input short-circuits: no request, results clear now.
		c.loader.Reset()
		return
	}

	c.timer = time.AfterFunc(c.debounce, c.fire)
	c.mu.Unlock()
}

// fire issues exactly one request for the latest query.
func (c *Controller[T]) fire() {
	c.mu.Lock()
	if c.closed || strings.TrimSpace(c.query) == "" {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	c.loader.Reload()
}

// Searching reports whether a non-empty query is active (pending or
// settled).
func (c *Controller[T]) Searching() bool {
	return strings.TrimSpace(c.Query()) != ""
}

// Close stops the pending timer and suppresses any in-flight commit.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.loader.Close()
}
