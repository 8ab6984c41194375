package screens

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/device"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/validation"
)

// CreateAlbum drives the new-album form. Nothing hits the network until
// Submit.
type CreateAlbum struct {
	api      *api.Client
	validate *validation.Validator
	logger   *slog.Logger

	mu    sync.Mutex
	draft domain.AlbumDraft
}

// NewCreateAlbum creates the new-album controller.
func NewCreateAlbum(client *api.Client, validate *validation.Validator, logger *slog.Logger) *CreateAlbum {
	return &CreateAlbum{api: client, validate: validate, logger: logger}
}

// SetTitle updates the draft title.
func (c *CreateAlbum) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Title = title
}

// SetDescription updates the draft description.
func (c *CreateAlbum) SetDescription(description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Description = description
}

// SetDestination updates the draft destination.
func (c *CreateAlbum) SetDestination(destination string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Destination = destination
}

// SetTripType classifies the trip.
func (c *CreateAlbum) SetTripType(t domain.TripType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.TypeTrip = t
}

// SetActivity records the trip's main activity.
func (c *CreateAlbum) SetActivity(a domain.TripActivity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Activity = a
}

// SetDetails records the free-form trip facts.
func (c *CreateAlbum) SetDetails(difficulty, timeTravel, cost string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Difficulty = difficulty
	c.draft.TimeTravel = timeTravel
	c.draft.Cost = cost
}

// SetPlace attaches a resolved location to the draft.
func (c *CreateAlbum) SetPlace(place *device.Place) {
	c.mu.Lock()
	defer c.mu.Unlock()
	loc := place.Location
	c.draft.Location = &loc
	if c.draft.Destination == "" {
		c.draft.Destination = place.Description
	}
}

// Draft returns a snapshot of the form state.
func (c *CreateAlbum) Draft() domain.AlbumDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Submit validates the draft and creates the album.
func (c *CreateAlbum) Submit(ctx context.Context) (*domain.Album, error) {
	c.mu.Lock()
	draft := c.draft
	c.mu.Unlock()

	if err := c.validate.Validate(draft); err != nil {
		return nil, err
	}

	album, err := c.api.CreateAlbum(ctx, draft)
	if err != nil {
		return nil, err
	}

	c.logger.Info("album created", "album_id", album.ID, "title", album.Title)
	return album, nil
}
