package loadable

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mochilaapp/mochila-client/internal/id"
)

// Fetch produces the resource for one load attempt. It must honor ctx:
// a superseded load's context is canceled as an optimization, but
// correctness never depends on the fetch noticing.
type Fetch[T any] func(ctx context.Context) (T, error)

// Controller manages the load lifecycle of one screen-resource pair.
//
// Loads are issued on Mount, Reload, Focus, and dependency change. Every
// load gets a sequence number; a load may commit its result only while it
// is still the newest one and the controller has not been closed. Anything
// else is discarded silently.
type Controller[T any] struct {
	mu     sync.Mutex
	id     string
	logger *slog.Logger
	fetch  Fetch[T]

	state   State[T]
	seq     uint64
	deps    string
	mounted bool
	closed  bool
	cancel  context.CancelFunc

	subs    map[int]func(State[T])
	nextSub int
}

// New creates a controller for the given fetch function. No load is
// issued until Mount.
func New[T any](fetch Fetch[T], logger *slog.Logger) *Controller[T] {
	return &Controller[T]{
		id:     id.MustGenerate("ctl"),
		logger: logger,
		fetch:  fetch,
		state:  Idle[T](),
		subs:   make(map[int]func(State[T])),
	}
}

// ID returns the controller's instance id (log correlation).
func (c *Controller[T]) ID() string { return c.id }

// State returns the current snapshot.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to be called on every committed transition,
// including Loading. Returns an unsubscribe function. fn runs on the
// goroutine that triggered the transition; keep it short.
func (c *Controller[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.nextSub
	c.nextSub++
	c.subs[idx] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, idx)
	}
}

// Mount issues the first load. Subsequent calls are no-ops; use Focus for
// navigation re-entry.
func (c *Controller[T]) Mount() {
	c.mu.Lock()
	if c.mounted || c.closed {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.issueLocked("mount")
}

// Attach marks the controller mounted without issuing a load. For
// resources whose first load is user-triggered (e.g. search), where Mount
// would fetch prematurely.
func (c *Controller[T]) Attach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mounted = true
}

// Focus re-issues the load when the screen regains navigation focus.
func (c *Controller[T]) Focus() {
	c.mu.Lock()
	if !c.mounted || c.closed {
		c.mu.Unlock()
		return
	}
	c.issueLocked("focus")
}

// Reload re-runs the fetch set, e.g. after a mutation. Follows the same
// staleness rule as every other load.
func (c *Controller[T]) Reload() {
	c.mu.Lock()
	if !c.mounted || c.closed {
		c.mu.Unlock()
		return
	}
	c.issueLocked("reload")
}

// SetDeps records the values the load depends on (route parameters,
// active filter). A change after Mount triggers an automatic reload.
func (c *Controller[T]) SetDeps(deps ...any) {
	fingerprint := fmt.Sprint(deps...)

	c.mu.Lock()
	if c.closed || fingerprint == c.deps {
		c.mu.Unlock()
		return
	}
	c.deps = fingerprint
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.issueLocked("deps")
}

// Reset returns the controller to Idle and supersedes any in-flight load,
// which may then never commit. Used when a screen's input empties and its
// results must clear synchronously.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = Idle[T]()
	subs := c.snapshotSubsLocked()
	state := c.state
	c.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Close suppresses any pending commit and detaches subscribers. No state
// update or notification happens after Close; a load that settles later
// is ignored.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.subs = make(map[int]func(State[T]))
}

// issueLocked starts a new load. Caller holds c.mu; issueLocked releases it.
func (c *Controller[T]) issueLocked(reason string) {
	c.seq++
	mySeq := c.seq

	// Cancel the superseded load's context. Purely an optimization: the
	// sequence check below is what protects against stale commits.
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.state = State[T]{Status: StatusLoading}
	subs := c.snapshotSubsLocked()
	state := c.state
	c.mu.Unlock()

	c.logger.Debug("load issued", "controller", c.id, "seq", mySeq, "reason", reason)
	for _, fn := range subs {
		fn(state)
	}

	go c.run(ctx, mySeq)
}

// run executes the fetch and commits the result if still the newest load.
func (c *Controller[T]) run(ctx context.Context, mySeq uint64) {
	data, err := c.fetch(ctx)

	c.mu.Lock()
	if c.closed || mySeq != c.seq {
		c.mu.Unlock()
		c.logger.Debug("load discarded", "controller", c.id, "seq", mySeq)
		return
	}

	if err != nil {
		c.state = State[T]{Status: StatusError, Err: err}
	} else {
		c.state = State[T]{Status: StatusSuccess, Data: data, FetchedAt: time.Now()}
	}
	subs := c.snapshotSubsLocked()
	state := c.state
	c.mu.Unlock()

	if err != nil {
		c.logger.Debug("load failed", "controller", c.id, "seq", mySeq, "error", err)
	} else {
		c.logger.Debug("load committed", "controller", c.id, "seq", mySeq)
	}
	for _, fn := range subs {
		fn(state)
	}
}

func (c *Controller[T]) snapshotSubsLocked() []func(State[T]) {
	subs := make([]func(State[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	return subs
}
