package view

import "math"

// Bounds constrains a fitted image: horizontal padding taken off the
// window width, and the height clamp applied after proportional scaling.
type Bounds struct {
	Padding   float64
	MinHeight float64
	MaxHeight float64
}

// Height clamps per surface. Feed cards sit inside padded containers;
// the detail view is nearly full-bleed and can afford a taller image.
var (
	FeedBounds   = Bounds{Padding: 40, MinHeight: 250, MaxHeight: 600}
	DetailBounds = Bounds{Padding: 20, MinHeight: 350, MaxHeight: 700}
	ThumbBounds  = Bounds{Padding: 0, MinHeight: 200, MaxHeight: 500}
)

// Size is a fitted display size in layout points.
type Size struct {
	Width  float64
	Height float64
}

// FitImage scales an image of srcWidth x srcHeight to fill the window
// width (minus padding) at its natural aspect ratio, then clamps the
// height into the surface's bounds. Degenerate source dimensions fall
// back to a square at the available width.
func FitImage(srcWidth, srcHeight, windowWidth float64, b Bounds) Size {
	available := windowWidth - b.Padding
	if available < 0 {
		available = 0
	}
	if srcWidth <= 0 || srcHeight <= 0 {
		return Size{Width: available, Height: clamp(available, b.MinHeight, b.MaxHeight)}
	}

	scale := available / srcWidth
	height := clamp(srcHeight*scale, b.MinHeight, b.MaxHeight)
	return Size{Width: available, Height: math.Round(height)}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
