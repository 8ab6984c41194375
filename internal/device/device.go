// Package device abstracts the capabilities the app borrows from the
// host: camera capture, gallery picking, and foreground location. Screens
// depend on these interfaces; platform bindings implement them. A refused
// permission surfaces as a capability-denied error and the triggering
// action aborts with no side effects.
package device

import (
	"context"
	"io"

	"github.com/mochilaapp/mochila-client/internal/apperr"
	"github.com/mochilaapp/mochila-client/internal/domain"
)

// Photo is an image picked from the gallery or captured by the camera.
// Content streams the encoded bytes; the caller closes it.
type Photo struct {
	Filename string
	Width    int
	Height   int
	Content  io.ReadCloser
}

// Camera captures a new photo. Returns a capability-denied error when the
// user refuses the camera permission.
type Camera interface {
	Capture(ctx context.Context) (*Photo, error)
}

// Gallery picks an existing photo. Returns a capability-denied error when
// the user refuses the media-library permission.
type Gallery interface {
	Pick(ctx context.Context) (*Photo, error)
}

// Locator reads the device's current position. Returns a
// capability-denied error when the user refuses the location permission.
type Locator interface {
	Position(ctx context.Context) (domain.Location, error)
}

// Denied builds the error for a refused permission. capability names what
// was refused ("camera", "gallery", "location").
func Denied(capability string) error {
	return apperr.CapabilityDenied(capability)
}
