package device

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mochilaapp/mochila-client/internal/domain"
)

// DirGallery is a filesystem-backed gallery: Pick returns the newest
// image in a directory, mirroring a camera roll sorted by recency. Used
// on hosts without a native picker.
type DirGallery struct {
	Dir string
}

// Pick returns the most recently modified image in the directory.
func (g DirGallery) Pick(ctx context.Context) (*Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(g.Dir)
	if err != nil {
		if os.IsPermission(err) {
			return nil, Denied("gallery")
		}
		return nil, fmt.Errorf("read gallery dir: %w", err)
	}

	var newest string
	var newestMod int64
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = entry.Name()
			newestMod = mod
		}
	}
	if newest == "" {
		return nil, fmt.Errorf("no images in %s", g.Dir)
	}

	f, err := os.Open(filepath.Join(g.Dir, newest))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return &Photo{Filename: newest, Content: f}, nil
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// NoCamera is the camera binding on hosts without one: every capture is a
// refused capability.
type NoCamera struct{}

// Capture always reports the camera capability as denied.
func (NoCamera) Capture(context.Context) (*Photo, error) {
	return nil, Denied("camera")
}

// NoLocator is the position binding on hosts without location services.
type NoLocator struct{}

// Position always reports the location capability as denied.
func (NoLocator) Position(context.Context) (domain.Location, error) {
	return domain.Location{}, Denied("location")
}
