package device

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mochilaapp/mochila-client/internal/apperr"
	"github.com/mochilaapp/mochila-client/internal/domain"
)

// Suggestion is one autocomplete candidate. Description is the full
// human-readable address; ID resolves to coordinates via Resolve.
type Suggestion struct {
	ID          string
	Description string
}

// Place is a resolved suggestion: the address plus its coordinates.
type Place struct {
	Description string
	Location    domain.Location
}

// PlacesClient looks up locations through the places autocomplete API.
// Responses come back in pt-BR to match the rest of the app.
type PlacesClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// NewPlacesClient creates a places lookup client.
func NewPlacesClient(baseURL, apiKey string, logger *slog.Logger) *PlacesClient {
	return &PlacesClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// Autocomplete returns candidates for a partial address.
func (c *PlacesClient) Autocomplete(ctx context.Context, input string) ([]Suggestion, error) {
	query := url.Values{
		"input":    {input},
		"key":      {c.apiKey},
		"language": {"pt-BR"},
	}

	var payload struct {
		Predictions []struct {
			PlaceID     string `json:"place_id"`
			Description string `json:"description"`
		} `json:"predictions"`
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/autocomplete/json", query, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, apperr.Client(http.StatusBadRequest, fmt.Sprintf("places lookup: %s", payload.Status))
	}

	suggestions := make([]Suggestion, 0, len(payload.Predictions))
	for _, p := range payload.Predictions {
		suggestions = append(suggestions, Suggestion{ID: p.PlaceID, Description: p.Description})
	}
	return suggestions, nil
}

// Resolve fetches the coordinates for a suggestion.
func (c *PlacesClient) Resolve(ctx context.Context, s Suggestion) (*Place, error) {
	query := url.Values{
		"place_id": {s.ID},
		"key":      {c.apiKey},
		"language": {"pt-BR"},
		"fields":   {"geometry"},
	}

	var payload struct {
		Result struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"result"`
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/details/json", query, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" {
		return nil, apperr.Client(http.StatusBadRequest, fmt.Sprintf("place details: %s", payload.Status))
	}

	return &Place{
		Description: s.Description,
		Location: domain.Location{
			Latitude:  payload.Result.Geometry.Location.Lat,
			Longitude: payload.Result.Geometry.Location.Lng,
		},
	}, nil
}

func (c *PlacesClient) get(ctx context.Context, path string, query url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Network("no response from places service").WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Network("read places response").WithCause(err)
	}

	if c.logger != nil {
		c.logger.Debug("places request", "path", path, "status", resp.StatusCode)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return apperr.Client(resp.StatusCode, "places request rejected")
	default:
		return apperr.Server(resp.StatusCode)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("parse places response: %w", err)
	}
	return nil
}
