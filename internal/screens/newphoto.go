package screens

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/apperr"
	"github.com/mochilaapp/mochila-client/internal/device"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/media/images"
	"github.com/mochilaapp/mochila-client/internal/validation"
	"github.com/mochilaapp/mochila-client/internal/view"
)

// NewPhoto drives the add-photo flow: pick or capture an image, fill in
// the form, then upload the image to the CDN and create the post with the
// returned URL. Nothing hits the network until Submit.
type NewPhoto struct {
	api      *api.Client
	uploader *api.Uploader
	camera   device.Camera
	gallery  device.Gallery
	validate *validation.Validator
	logger   *slog.Logger

	mu    sync.Mutex
	draft domain.PostDraft
	photo *device.Photo
	dims  images.Dimensions
}

// NewNewPhoto creates the add-photo controller targeting an album.
func NewNewPhoto(
	client *api.Client,
	uploader *api.Uploader,
	camera device.Camera,
	gallery device.Gallery,
	validate *validation.Validator,
	albumID string,
	logger *slog.Logger,
) *NewPhoto {
	return &NewPhoto{
		api:      client,
		uploader: uploader,
		camera:   camera,
		gallery:  gallery,
		validate: validate,
		logger:   logger,
		draft:    domain.PostDraft{AlbumID: albumID},
	}
}

// PickFromGallery replaces the draft photo with one from the gallery.
// A refused permission aborts with a capability-denied error and leaves
// the draft untouched.
func (n *NewPhoto) PickFromGallery(ctx context.Context) error {
	photo, err := n.gallery.Pick(ctx)
	if err != nil {
		return err
	}
	return n.adopt(photo)
}

// Capture replaces the draft photo with a fresh camera capture.
func (n *NewPhoto) Capture(ctx context.Context) error {
	photo, err := n.camera.Capture(ctx)
	if err != nil {
		return err
	}
	return n.adopt(photo)
}

// adopt probes the picked photo and installs it on the draft, closing any
// previously picked one.
func (n *NewPhoto) adopt(photo *device.Photo) error {
	dims := images.Dimensions{Width: photo.Width, Height: photo.Height}
	if dims.Width <= 0 || dims.Height <= 0 {
		probed, err := images.Probe(photo.Content)
		if err != nil {
			photo.Content.Close()
			return fmt.Errorf("probe picked image: %w", err)
		}
		dims = probed
	}

	n.mu.Lock()
	previous := n.photo
	n.photo = photo
	n.dims = dims
	n.mu.Unlock()

	if previous != nil {
		previous.Content.Close()
	}
	return nil
}

// SetTitle updates the draft title.
func (n *NewPhoto) SetTitle(title string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.draft.Title = title
}

// SetDescription updates the draft description.
func (n *NewPhoto) SetDescription(description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.draft.Description = description
}

// SetCover marks the new post as the album cover.
func (n *NewPhoto) SetCover(cover bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.draft.IsCover = cover
}

// SetPlace attaches a resolved location to the draft.
func (n *NewPhoto) SetPlace(place *device.Place) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.draft.NameLocation = place.Description
	loc := place.Location
	n.draft.Location = &loc
}

// HasPhoto reports whether an image has been picked.
func (n *NewPhoto) HasPhoto() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.photo != nil
}

// PreviewSize fits the picked photo into the detail layout.
func (n *NewPhoto) PreviewSize(windowWidth float64) view.Size {
	n.mu.Lock()
	dims := n.dims
	n.mu.Unlock()
	return view.FitImage(float64(dims.Width), float64(dims.Height), windowWidth, view.DetailBounds)
}

// Submit validates the draft, uploads the image, and creates the post.
// Validation failures and a missing photo abort before any network call.
func (n *NewPhoto) Submit(ctx context.Context) (*domain.Post, error) {
	n.mu.Lock()
	draft := n.draft
	photo := n.photo
	n.mu.Unlock()

	if photo == nil {
		return nil, apperr.Validation("a photo is required")
	}
	// The image URL only exists after upload; validate the rest first so
	// a bad form never costs an upload.
	prevalidate := draft
	prevalidate.ImageURL = "https://placeholder.invalid/pending"
	if err := n.validate.Validate(prevalidate); err != nil {
		return nil, err
	}

	secureURL, err := n.uploader.Upload(ctx, photo.Filename, photo.Content)
	if err != nil {
		return nil, err
	}
	draft.ImageURL = secureURL

	if err := n.validate.Validate(draft); err != nil {
		return nil, err
	}

	post, err := n.api.CreatePost(ctx, draft)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	n.photo = nil
	n.mu.Unlock()
	photo.Content.Close()

	if n.logger != nil {
		n.logger.Info("post created", "post_id", post.ID, "album_id", post.AlbumID)
	}
	return post, nil
}

// Close releases the picked photo without submitting.
func (n *NewPhoto) Close() {
	n.mu.Lock()
	photo := n.photo
	n.photo = nil
	n.mu.Unlock()
	if photo != nil {
		photo.Content.Close()
	}
}
