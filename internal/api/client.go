// Package api is the travel-journal backend client. It builds authenticated
// requests, parses JSON responses, and classifies failures into the apperr
// taxonomy. It never retries; retry policy belongs to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mochilaapp/mochila-client/internal/apperr"
	"github.com/mochilaapp/mochila-client/internal/ratelimit"
)

const (
	// Politeness limit toward the backend: 10 requests per second per
	// host, burst of 20. Screens fetch in small parallel bursts.
	defaultRPS   = 10.0
	defaultBurst = 20

	defaultTimeout = 30 * time.Second
)

// TokenSource supplies the bearer token for authenticated requests.
// The session manager implements it.
type TokenSource interface {
	Token() string
}

// Client is a rate-limited travel-journal API client.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	limiter  *ratelimit.KeyedLimiter
	logger   *slog.Logger
	tokens   TokenSource
	rejected func() // invoked when the backend rejects the token
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// OnTokenRejected registers the session shell's reaction to a rejected
// token. The client itself never mutates the session.
func OnTokenRejected(fn func()) Option {
	return func(c *Client) { c.rejected = fn }
}

// New creates a new API client for the given base URL.
func New(baseURL string, tokens TokenSource, logger *slog.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		logger:  logger,
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// doRequest executes one HTTP request against the backend.
// When auth is true the bearer token is attached; a missing token fails
// immediately with Unauthenticated and no request is issued.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any, auth bool) ([]byte, error) {
	var token string
	if auth {
		token = c.tokens.Token()
		if token == "" {
			return nil, apperr.Unauthenticated("no session token")
		}
	}

	if err := c.limiter.Wait(ctx, c.baseURL.Host); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeNetwork, "rate limit wait")
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// No response received: connectivity, DNS, timeout.
		return nil, apperr.Network("no response from server").WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Network("read response").WithCause(err)
	}

	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return respBody, c.classify(resp.StatusCode, respBody, auth)
}

// classify maps a response status to the error taxonomy. 2xx is nil.
func (c *Client) classify(status int, body []byte, auth bool) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if auth && c.rejected != nil {
			c.rejected()
		}
		return apperr.Unauthenticated(messageFrom(body, "token rejected"))
	case status >= 400 && status < 500:
		return apperr.Client(status, messageFrom(body, fmt.Sprintf("request rejected (%d)", status)))
	default:
		return apperr.Server(status)
	}
}

// messageFrom extracts a human-readable message from an error response
// body, falling back when the body has none.
func messageFrom(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}

// get issues a GET and decodes the JSON response into dest.
func (c *Client) get(ctx context.Context, path string, query url.Values, dest any, auth bool) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, query, nil, auth)
	if err != nil {
		return err
	}
	return decode(body, dest)
}

// send issues a mutating request and decodes the response when dest is
// non-nil.
func (c *Client) send(ctx context.Context, method, path string, payload, dest any, auth bool) error {
	body, err := c.doRequest(ctx, method, path, nil, payload, auth)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return decode(body, dest)
}

func decode(body []byte, dest any) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
