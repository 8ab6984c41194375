package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mochilaapp/mochila-client/internal/domain"
)

// ListAlbums fetches the authenticated user's albums.
func (c *Client) ListAlbums(ctx context.Context) ([]domain.Album, error) {
	var result struct {
		Albums []domain.Album `json:"albums"`
	}
	if err := c.get(ctx, "/user/albums", nil, &result, true); err != nil {
		return nil, err
	}
	return result.Albums, nil
}

// GetAlbum fetches one album by id.
func (c *Client) GetAlbum(ctx context.Context, albumID string) (*domain.Album, error) {
	var album domain.Album
	if err := c.get(ctx, "/albums/"+albumID, nil, &album, true); err != nil {
		return nil, err
	}
	return &album, nil
}

// CreateAlbum creates an album from a draft.
func (c *Client) CreateAlbum(ctx context.Context, draft domain.AlbumDraft) (*domain.Album, error) {
	var result struct {
		Album domain.Album `json:"album"`
	}
	if err := c.send(ctx, http.MethodPost, "/albums", draft, &result, true); err != nil {
		return nil, err
	}
	return &result.Album, nil
}

// PatchAlbumTitle updates an album's title and returns the updated album.
func (c *Client) PatchAlbumTitle(ctx context.Context, albumID, title string) (*domain.Album, error) {
	return c.patchAlbum(ctx, albumID, "title", struct {
		Title string `json:"title"`
	}{Title: title})
}

// PatchAlbumDescription updates an album's description.
func (c *Client) PatchAlbumDescription(ctx context.Context, albumID, description string) (*domain.Album, error) {
	return c.patchAlbum(ctx, albumID, "description", struct {
		Description string `json:"description"`
	}{Description: description})
}

// PatchAlbumLocation updates an album's map coordinate and place label.
func (c *Client) PatchAlbumLocation(ctx context.Context, albumID string, loc domain.Location, nameLocation string) (*domain.Album, error) {
	return c.patchAlbum(ctx, albumID, "location", struct {
		Location     domain.Location `json:"location"`
		NameLocation string          `json:"nameLocation,omitempty"`
	}{Location: loc, NameLocation: nameLocation})
}

func (c *Client) patchAlbum(ctx context.Context, albumID, field string, payload any) (*domain.Album, error) {
	var album domain.Album
	if err := c.send(ctx, http.MethodPatch, "/albums/"+albumID+"/"+field, payload, &album, true); err != nil {
		return nil, err
	}
	return &album, nil
}

// DeleteAlbum deletes an album; the server cascades to its posts and
// reports how many were removed.
func (c *Client) DeleteAlbum(ctx context.Context, albumID string) (*domain.DeleteAlbumResult, error) {
	var result struct {
		Details domain.DeleteAlbumResult `json:"details"`
	}
	if err := c.send(ctx, http.MethodDelete, "/albums/"+albumID, nil, &result, true); err != nil {
		return nil, err
	}
	return &result.Details, nil
}

// AlbumFilter selects albums by trip type or activity. Exactly one field
// is set per request; the home screen's filter chips are exclusive.
type AlbumFilter struct {
	TypeTrip domain.TripType
	Activity domain.TripActivity
}

// FilterAlbums fetches the user's albums matching the filter.
func (c *Client) FilterAlbums(ctx context.Context, filter AlbumFilter) ([]domain.Album, error) {
	query := url.Values{}
	if filter.TypeTrip != "" {
		query.Set("typeTrip", string(filter.TypeTrip))
	}
	if filter.Activity != "" {
		query.Set("tripActivity", string(filter.Activity))
	}

	var result struct {
		Albums []domain.Album `json:"albums"`
	}
	if err := c.get(ctx, "/albums/filter", query, &result, true); err != nil {
		return nil, err
	}
	return result.Albums, nil
}

// ListAlbumPosts fetches the posts belonging to an album.
func (c *Client) ListAlbumPosts(ctx context.Context, albumID string) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.get(ctx, "/albums/"+albumID+"/posts", nil, &posts, true); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListAlbumLocations fetches the geotagged posts of an album for the trip
// map.
func (c *Client) ListAlbumLocations(ctx context.Context, albumID string) ([]domain.PostLocation, error) {
	var result struct {
		Locations []domain.PostLocation `json:"locations"`
	}
	if err := c.get(ctx, "/albums/"+albumID+"/locations", nil, &result, true); err != nil {
		return nil, err
	}
	return result.Locations, nil
}
