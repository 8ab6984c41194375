package screens

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/loadable"
	"github.com/mochilaapp/mochila-client/internal/view"
)

// TripMap drives the album map: every located post as a marker, an
// initial region covering all of them, and a selection for the callout.
type TripMap struct {
	api    *api.Client
	logger *slog.Logger

	mu       sync.Mutex
	albumID  string
	selected string

	Locations *loadable.Controller[[]domain.PostLocation]
}

// NewTripMap creates the map controller for an album. Call
// Locations.Mount when the screen appears.
func NewTripMap(client *api.Client, albumID string, logger *slog.Logger) *TripMap {
	t := &TripMap{api: client, albumID: albumID, logger: logger}

	t.Locations = loadable.New(func(ctx context.Context) ([]domain.PostLocation, error) {
		t.mu.Lock()
		id := t.albumID
		t.mu.Unlock()
		return client.ListAlbumLocations(ctx, id)
	}, logger)
	t.Locations.SetDeps(albumID)

	return t
}

// Region computes the initial viewport for the loaded markers. Before the
// load settles it returns the country-level default.
func (t *TripMap) Region() view.Region {
	state := t.Locations.State()
	if !state.Ready() {
		return view.MapRegion(nil)
	}
	return view.MapRegion(state.Data)
}

// Select marks a marker for the callout; empty clears the selection.
func (t *TripMap) Select(postID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selected = postID
}

// Selected returns the marker selected for the callout, empty when none.
func (t *TripMap) Selected() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selected
}

// MarkerLabel renders a marker's place label, shortened to two components.
func (t *TripMap) MarkerLabel(loc domain.PostLocation) string {
	return view.SimplifyLocation(loc.NameLocation)
}

// Close releases the screen's controller on unmount.
func (t *TripMap) Close() {
	t.Locations.Close()
}
