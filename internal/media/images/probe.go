// Package images probes picked photos for their natural dimensions, which
// feed the image-fitting projection before the photo ever hits the network.
package images

import (
	"fmt"
	"image"
	"io"

	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Dimensions is an image's natural pixel size.
type Dimensions struct {
	Width  int
	Height int
}

// Probe reads just enough of an encoded image to learn its dimensions.
// The reader is consumed only up to the header.
func Probe(r io.Reader) (Dimensions, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Dimensions{}, fmt.Errorf("degenerate %s dimensions %dx%d", format, cfg.Width, cfg.Height)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}
