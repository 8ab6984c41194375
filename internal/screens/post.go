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

// Post drives the post detail screen: fetch by id, inline edits saved via
// PATCH followed by a reload, and the display projections for grade, date,
// and location.
type Post struct {
	api    *api.Client
	logger *slog.Logger

	mu     sync.Mutex
	postID string

	Data *loadable.Controller[*domain.Post]
}

// NewPost creates the post controller for the given post. Call Data.Mount
// when the screen appears.
func NewPost(client *api.Client, postID string, logger *slog.Logger) *Post {
	p := &Post{api: client, postID: postID, logger: logger}

	p.Data = loadable.New(func(ctx context.Context) (*domain.Post, error) {
		return client.GetPost(ctx, p.PostID())
	}, logger)
	p.Data.SetDeps(postID)

	return p
}

// PostID returns the post currently shown.
func (p *Post) PostID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.postID
}

// SetPost re-targets the screen; a changed id reloads automatically.
func (p *Post) SetPost(postID string) {
	p.mu.Lock()
	p.postID = postID
	p.mu.Unlock()
	p.Data.SetDeps(postID)
}

// Rename updates the post title, then reloads.
func (p *Post) Rename(ctx context.Context, title string) error {
	return p.patch(ctx, domain.PostPatch{Title: &title})
}

// EditDescription updates the post description, then reloads.
func (p *Post) EditDescription(ctx context.Context, description string) error {
	return p.patch(ctx, domain.PostPatch{Description: &description})
}

// SetLocation updates the post's place, then reloads.
func (p *Post) SetLocation(ctx context.Context, loc domain.Location, nameLocation string) error {
	return p.patch(ctx, domain.PostPatch{Location: &loc, NameLocation: &nameLocation})
}

// SetCover marks or unmarks the post as its album's cover, then reloads.
func (p *Post) SetCover(ctx context.Context, cover bool) error {
	return p.patch(ctx, domain.PostPatch{IsCover: &cover})
}

// Rate sets the post's grade through the dedicated grade endpoint, then
// reloads.
func (p *Post) Rate(ctx context.Context, grade float64) error {
	if _, err := p.api.RatePost(ctx, p.PostID(), grade); err != nil {
		return err
	}
	p.Data.Reload()
	return nil
}

// Delete removes the post. The caller navigates away on success.
func (p *Post) Delete(ctx context.Context) error {
	return p.api.DeletePost(ctx, p.PostID())
}

func (p *Post) patch(ctx context.Context, patch domain.PostPatch) error {
	if _, err := p.api.PatchPost(ctx, p.PostID(), patch); err != nil {
		return err
	}
	p.Data.Reload()
	return nil
}

// Grade renders the post's grade for display, "0.0" when unrated.
func (p *Post) Grade(post *domain.Post) string {
	return view.FormatGrade(post.Grade)
}

// Place renders the post's location label, shortened to two components.
func (p *Post) Place(post *domain.Post) string {
	return view.SimplifyLocation(post.NameLocation)
}

// Taken renders the post's creation date in long pt-BR form.
func (p *Post) Taken(post *domain.Post) string {
	return view.FormatDate(post.CreatedAt)
}

// ImageSize fits the post's image into the detail layout.
func (p *Post) ImageSize(width, height, windowWidth float64) view.Size {
	return view.FitImage(width, height, windowWidth, view.DetailBounds)
}

// Close releases the screen's controller on unmount.
func (p *Post) Close() {
	p.Data.Close()
}
