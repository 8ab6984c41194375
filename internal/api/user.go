package api

import (
	"context"
	"net/http"

	"github.com/mochilaapp/mochila-client/internal/domain"
)

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login exchanges credentials for a session token and user summary.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*LoginResult, error) {
	var result LoginResult
	if err := c.send(ctx, http.MethodPost, "/login", creds, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

// LoginVisitor obtains a token without user-identifying data.
func (c *Client) LoginVisitor(ctx context.Context) (string, error) {
	var result struct {
		Token string `json:"token"`
	}
	if err := c.send(ctx, http.MethodPost, "/login-visitor", nil, &result, false); err != nil {
		return "", err
	}
	return result.Token, nil
}

// Register creates an account and returns the server's confirmation message.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (string, error) {
	var result struct {
		Message string `json:"message"`
	}
	if err := c.send(ctx, http.MethodPost, "/user", reg, &result, false); err != nil {
		return "", err
	}
	return result.Message, nil
}

// GetUser fetches the authenticated user's profile.
func (c *Client) GetUser(ctx context.Context) (*domain.User, error) {
	var result struct {
		User domain.User `json:"user"`
	}
	if err := c.get(ctx, "/user", nil, &result, true); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// UpdateUser replaces the editable account fields.
func (c *Client) UpdateUser(ctx context.Context, userID string, update domain.ProfileUpdate) error {
	return c.send(ctx, http.MethodPut, "/user/"+userID, update, nil, true)
}

// UpdateProfileImage points the profile at an already-uploaded image URL.
func (c *Client) UpdateProfileImage(ctx context.Context, imageURL string) error {
	payload := struct {
		UserImg string `json:"userImg"`
	}{UserImg: imageURL}
	return c.send(ctx, http.MethodPatch, "/user/profile-image", payload, nil, true)
}

// GetStats fetches the aggregate profile summary.
func (c *Client) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.get(ctx, "/user/stats", nil, &stats, true); err != nil {
		return nil, err
	}
	return &stats, nil
}
