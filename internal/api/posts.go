package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mochilaapp/mochila-client/internal/domain"
)

// GetPost fetches one post by id.
func (c *Client) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	var post domain.Post
	if err := c.get(ctx, "/posts/"+postID, nil, &post, true); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost attaches a new photo post to an album. The image must already
// be uploaded; the draft carries its URL.
func (c *Client) CreatePost(ctx context.Context, draft domain.PostDraft) (*domain.Post, error) {
	var post domain.Post
	if err := c.send(ctx, http.MethodPost, "/posts", draft, &post, true); err != nil {
		return nil, err
	}
	return &post, nil
}

// PatchPost updates the editable fields of a post.
func (c *Client) PatchPost(ctx context.Context, postID string, patch domain.PostPatch) (*domain.Post, error) {
	var post domain.Post
	if err := c.send(ctx, http.MethodPatch, "/posts/"+postID, patch, &post, true); err != nil {
		return nil, err
	}
	return &post, nil
}

// RatePost sets a post's grade (0-5).
func (c *Client) RatePost(ctx context.Context, postID string, grade float64) (*domain.Post, error) {
	payload := struct {
		Grade float64 `json:"grade"`
	}{Grade: grade}

	var post domain.Post
	if err := c.send(ctx, http.MethodPatch, "/posts/"+postID+"/grade", payload, &post, true); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.send(ctx, http.MethodDelete, "/posts/"+postID, nil, nil, true)
}

// BestPosts fetches the user's top-rated posts for the home screen strip.
func (c *Client) BestPosts(ctx context.Context) ([]domain.Post, error) {
	var result struct {
		Posts []domain.Post `json:"posts"`
	}
	if err := c.get(ctx, "/posts/best", nil, &result, true); err != nil {
		return nil, err
	}
	return result.Posts, nil
}

// SearchPosts runs a free-text search over the user's posts.
func (c *Client) SearchPosts(ctx context.Context, query string) ([]domain.Post, error) {
	q := url.Values{}
	q.Set("query", query)

	var result struct {
		Posts []domain.Post `json:"posts"`
	}
	if err := c.get(ctx, "/posts/search", q, &result, true); err != nil {
		return nil, err
	}
	return result.Posts, nil
}
