package api

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/mochilaapp/mochila-client/internal/apperr"
)

// Uploader sends images to the CDN and returns their public URLs.
// The CDN is a separate collaborator from the backend API: no bearer
// token, multipart body, {secure_url} response.
type Uploader struct {
	uploadURL string
	http      *http.Client
	logger    *slog.Logger
}

// NewUploader creates an image uploader for the given endpoint.
func NewUploader(uploadURL string, logger *slog.Logger) *Uploader {
	return &Uploader{
		uploadURL: uploadURL,
		// Uploads carry whole photos; give them more room than API calls.
		http:   &http.Client{Timeout: 2 * time.Minute},
		logger: logger,
	}
}

// Upload sends one image and returns its secure URL.
// filename only informs the CDN's content handling; the returned URL is
// CDN-assigned.
func (u *Uploader) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("copy image content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	start := time.Now()
	resp, err := u.http.Do(req)
	if err != nil {
		return "", apperr.Network("no response from upload service").WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.Network("read upload response").WithCause(err)
	}

	u.logger.Debug("image upload",
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return "", apperr.Client(resp.StatusCode, messageFrom(body, "upload rejected"))
	default:
		return "", apperr.Server(resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse upload response: %w", err)
	}
	if result.SecureURL == "" {
		return "", apperr.Client(resp.StatusCode, "upload response missing secure_url")
	}
	return result.SecureURL, nil
}
