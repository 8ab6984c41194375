// Package nav implements the navigation shell: a route stack with an
// authentication gate. Screens ask the navigator to move; the navigator
// consults the session to decide whether the destination is reachable.
package nav

import (
	"log/slog"
	"sync"
)

// Route names every screen in the app.
type Route string

const (
	RouteGetStarted    Route = "get-started"
	RouteLogin         Route = "login"
	RouteRegister      Route = "register"
	RouteHome          Route = "home"
	RouteAlbum         Route = "album"
	RouteCreateAlbum   Route = "create-album"
	RoutePost          Route = "post"
	RouteNewPhoto      Route = "new-photo"
	RouteTripMap       Route = "trip-map"
	RouteProfile       Route = "profile"
	RoutePhotoLocation Route = "photo-location"
	RouteAlbumLocation Route = "album-location"
)

// publicRoutes are reachable without a session.
var publicRoutes = map[Route]bool{
	RouteGetStarted: true,
	RouteLogin:      true,
	RouteRegister:   true,
}

// Params carries route arguments (album id, post id, picker seed).
type Params map[string]string

// Entry is one stack frame.
type Entry struct {
	Route  Route
	Params Params

	// result receives a value sent back by the destination, e.g. a
	// location picker returning the chosen place to the screen that
	// opened it. Nil unless the caller asked for a result.
	result chan any
}

// TokenSource reports whether a session token exists. Satisfied by the
// session manager.
type TokenSource interface {
	Token() string
}

// Navigator is the route stack. All methods are safe for concurrent use.
type Navigator struct {
	mu     sync.Mutex
	stack  []Entry
	tokens TokenSource
	logger *slog.Logger

	subs    map[int]func(Entry)
	nextSub int
}

// New creates a navigator rooted at the get-started screen.
func New(tokens TokenSource, logger *slog.Logger) *Navigator {
	return &Navigator{
		stack:  []Entry{{Route: RouteGetStarted}},
		tokens: tokens,
		logger: logger,
		subs:   make(map[int]func(Entry)),
	}
}

// Current returns the top of the stack.
func (n *Navigator) Current() Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Depth returns the stack depth.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

// Subscribe registers fn to be called whenever the current route changes.
// Returns an unsubscribe function.
func (n *Navigator) Subscribe(fn func(Entry)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	idx := n.nextSub
	n.nextSub++
	n.subs[idx] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, idx)
	}
}

// Navigate pushes a route. An authenticated-only destination with no
// session token redirects to login instead.
func (n *Navigator) Navigate(route Route, params Params) {
	n.mu.Lock()
	entry := n.gateLocked(route, params)
	n.stack = append(n.stack, entry)
	n.notifyLocked()
}

// NavigateForResult pushes a route and returns a channel that yields the
// single value the destination sends back via Return. The channel closes
// without a value when the destination is popped without returning one.
func (n *Navigator) NavigateForResult(route Route, params Params) <-chan any {
	n.mu.Lock()
	entry := n.gateLocked(route, params)
	entry.result = make(chan any, 1)
	n.stack = append(n.stack, entry)
	ch := entry.result
	n.notifyLocked()
	return ch
}

// Return sends value back to the screen that opened the current route,
// then pops. No-op on the root.
func (n *Navigator) Return(value any) {
	n.mu.Lock()
	top := n.stack[len(n.stack)-1]
	if top.result != nil {
		top.result <- value
		close(top.result)
		top.result = nil
		n.stack[len(n.stack)-1] = top
	}
	n.popLocked()
}

// Back pops the current route. No-op on the root.
func (n *Navigator) Back() {
	n.mu.Lock()
	n.popLocked()
}

// Reset replaces the whole stack with a single route, e.g. after login or
// logout. The gate still applies.
func (n *Navigator) Reset(route Route) {
	n.mu.Lock()
	entry := n.gateLocked(route, nil)
	for _, e := range n.stack {
		if e.result != nil {
			close(e.result)
		}
	}
	n.stack = []Entry{entry}
	n.notifyLocked()
}

// SessionEnded resets to login. Wired to the session manager so a cleared
// session anywhere in the app lands the user on the login screen.
func (n *Navigator) SessionEnded() {
	if n.logger != nil {
		n.logger.Info("session ended, redirecting to login")
	}
	n.Reset(RouteLogin)
}

// gateLocked applies the authentication gate to a destination.
func (n *Navigator) gateLocked(route Route, params Params) Entry {
	if !publicRoutes[route] && n.tokens.Token() == "" {
		if n.logger != nil {
			n.logger.Debug("navigation gated", "route", string(route))
		}
		return Entry{Route: RouteLogin}
	}
	return Entry{Route: route, Params: params}
}

// popLocked removes the top frame. Caller holds n.mu; popLocked releases it.
func (n *Navigator) popLocked() {
	if len(n.stack) <= 1 {
		n.mu.Unlock()
		return
	}
	top := n.stack[len(n.stack)-1]
	if top.result != nil {
		close(top.result)
	}
	n.stack = n.stack[:len(n.stack)-1]
	n.notifyLocked()
}

// notifyLocked snapshots subscribers and the current entry, then releases
// n.mu and notifies.
func (n *Navigator) notifyLocked() {
	subs := make([]func(Entry), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	current := n.stack[len(n.stack)-1]
	n.mu.Unlock()

	for _, fn := range subs {
		fn(current)
	}
}
