// Package screens holds one controller per screen. A controller owns the
// screen's load lifecycle and actions; rendering stays in the UI layer,
// which subscribes to the controllers it is given.
package screens

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/loadable"
	"github.com/mochilaapp/mochila-client/internal/media/images"
	"github.com/mochilaapp/mochila-client/internal/search"
	"github.com/mochilaapp/mochila-client/internal/session"
	"github.com/mochilaapp/mochila-client/internal/view"
)

// FilterChip is one album filter button on the home screen.
type FilterChip struct {
	ID    string
	Name  string
	Label string
	Field string
}

// FilterChips is the fixed chip row, labels in pt-BR.
var FilterChips = []FilterChip{
	{ID: "1", Name: "beach", Label: "Praia", Field: "typeTrip"},
	{ID: "2", Name: "mountain", Label: "Montanha", Field: "typeTrip"},
	{ID: "3", Name: "city", Label: "Cidade", Field: "typeTrip"},
	{ID: "4", Name: "forest", Label: "Floresta", Field: "typeTrip"},
	{ID: "5", Name: "mergulho", Label: "Mergulho", Field: "tripActivity"},
	{ID: "6", Name: "pedal", Label: "Pedal", Field: "tripActivity"},
	{ID: "7", Name: "work", Label: "Trabalho", Field: "typeTrip"},
}

// HomeFeed is the home screen's primary data: the user's albums alongside
// the best-rated posts, fetched in parallel.
type HomeFeed = loadable.Pair[[]domain.Album, []domain.Post]

// Home drives the home screen: the feed, the filter chips, and the
// debounced post search.
type Home struct {
	api     *api.Client
	session *session.Manager
	logger  *slog.Logger

	// Feed loads on mount and refreshes on focus.
	Feed *loadable.Controller[HomeFeed]
	// Filtered holds the album list for the active chip; Idle when no
	// chip is active.
	Filtered *loadable.Controller[[]domain.Album]
	// Search debounces the post search field.
	Search *search.Controller[[]domain.Post]

	mu     sync.Mutex
	active FilterChip
}

// NewHome creates the home controller. Call Feed.Mount when the screen
// appears.
func NewHome(client *api.Client, sess *session.Manager, debounce time.Duration, logger *slog.Logger) *Home {
	h := &Home{api: client, session: sess, logger: logger}

	h.Feed = loadable.New(loadable.Join2(
		client.ListAlbums,
		client.BestPosts,
	), logger)

	h.Filtered = loadable.New(func(ctx context.Context) ([]domain.Album, error) {
		return client.FilterAlbums(ctx, h.activeFilter())
	}, logger)
	h.Filtered.Attach()

	h.Search = search.New(client.SearchPosts, debounce, logger)

	return h
}

// Greeting returns the signed-in user's display name for the header.
func (h *Home) Greeting() string {
	sess := h.session.Current()
	if sess == nil || sess.User == nil {
		return "User"
	}
	return sess.User.DisplayName()
}

// ToggleFilter activates a chip, or deactivates it when it is already
// active. Deactivating restores the unfiltered album list synchronously.
func (h *Home) ToggleFilter(chip FilterChip) {
	h.mu.Lock()
	if h.active.ID == chip.ID {
		h.active = FilterChip{}
		h.mu.Unlock()
		h.Filtered.Reset()
		return
	}
	h.active = chip
	h.mu.Unlock()
	h.Filtered.Reload()
}

// ActiveFilter returns the active chip, zero when none.
func (h *Home) ActiveFilter() FilterChip {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// Filtering reports whether a chip is active.
func (h *Home) Filtering() bool {
	return h.ActiveFilter().ID != ""
}

// activeFilter maps the active chip to the filter endpoint's parameters.
func (h *Home) activeFilter() api.AlbumFilter {
	h.mu.Lock()
	chip := h.active
	h.mu.Unlock()

	var filter api.AlbumFilter
	switch chip.Field {
	case "typeTrip":
		filter.TypeTrip = domain.TripType(chip.Name)
	case "tripActivity":
		filter.Activity = domain.TripActivity(chip.Name)
	}
	return filter
}

// SearchImageSize fits a search-result image into the feed layout.
func (h *Home) SearchImageSize(dims images.Dimensions, windowWidth float64) view.Size {
	return view.FitImage(float64(dims.Width), float64(dims.Height), windowWidth, view.FeedBounds)
}

// Close releases the screen's controllers on unmount.
func (h *Home) Close() {
	h.Feed.Close()
	h.Filtered.Close()
	h.Search.Close()
}
