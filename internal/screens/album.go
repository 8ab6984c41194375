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

// AlbumData is the album detail payload: the album plus its posts,
// fetched in parallel.
type AlbumData = loadable.Pair[*domain.Album, []domain.Post]

// Album drives the album detail screen.
type Album struct {
	api    *api.Client
	logger *slog.Logger

	mu      sync.Mutex
	albumID string

	Data *loadable.Controller[AlbumData]
}

// NewAlbum creates the album controller for the given album. Call
// Data.Mount when the screen appears; SetAlbum re-targets it when the
// route parameter changes.
func NewAlbum(client *api.Client, albumID string, logger *slog.Logger) *Album {
	a := &Album{api: client, albumID: albumID, logger: logger}

	a.Data = loadable.New(loadable.Join2(
		func(ctx context.Context) (*domain.Album, error) {
			return client.GetAlbum(ctx, a.AlbumID())
		},
		func(ctx context.Context) ([]domain.Post, error) {
			return client.ListAlbumPosts(ctx, a.AlbumID())
		},
	), logger)
	a.Data.SetDeps(albumID)

	return a
}

// AlbumID returns the album currently shown.
func (a *Album) AlbumID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.albumID
}

// SetAlbum re-targets the screen; a changed id reloads automatically.
func (a *Album) SetAlbum(albumID string) {
	a.mu.Lock()
	a.albumID = albumID
	a.mu.Unlock()
	a.Data.SetDeps(albumID)
}

// Rename updates the album title, then reloads.
func (a *Album) Rename(ctx context.Context, title string) error {
	if _, err := a.api.PatchAlbumTitle(ctx, a.AlbumID(), title); err != nil {
		return err
	}
	a.Data.Reload()
	return nil
}

// EditDescription updates the album description, then reloads.
func (a *Album) EditDescription(ctx context.Context, description string) error {
	if _, err := a.api.PatchAlbumDescription(ctx, a.AlbumID(), description); err != nil {
		return err
	}
	a.Data.Reload()
	return nil
}

// SetLocation updates the album location, then reloads.
func (a *Album) SetLocation(ctx context.Context, loc domain.Location, nameLocation string) error {
	if _, err := a.api.PatchAlbumLocation(ctx, a.AlbumID(), loc, nameLocation); err != nil {
		return err
	}
	a.Data.Reload()
	return nil
}

// Delete removes the album and every post in it. The caller navigates
// away on success; the result reports how many posts went with it.
func (a *Album) Delete(ctx context.Context) (*domain.DeleteAlbumResult, error) {
	return a.api.DeleteAlbum(ctx, a.AlbumID())
}

// Cost renders the album's trip cost for display.
func (a *Album) Cost(album *domain.Album) string {
	return view.FormatCost(album.Cost)
}

// Close releases the screen's controller on unmount.
func (a *Album) Close() {
	a.Data.Close()
}
