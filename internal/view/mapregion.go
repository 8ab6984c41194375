package view

import "github.com/mochilaapp/mochila-client/internal/domain"

// Region is a map viewport: a center coordinate plus the visible span in
// degrees along each axis.
type Region struct {
	Latitude       float64
	Longitude      float64
	LatitudeDelta  float64
	LongitudeDelta float64
}

// Wide view over Brazil, shown when an album has no located posts.
var defaultRegion = Region{
	Latitude:       -15.7801,
	Longitude:      -47.9292,
	LatitudeDelta:  40,
	LongitudeDelta: 40,
}

// MapRegion computes the initial viewport for a set of post locations.
// A single marker gets a tight city-level view; multiple markers get a
// region centered on their bounding box with a 50% span margin so edge
// markers stay clear of the viewport border.
func MapRegion(locations []domain.PostLocation) Region {
	if len(locations) == 0 {
		return defaultRegion
	}

	if len(locations) == 1 {
		return Region{
			Latitude:       locations[0].Location.Latitude,
			Longitude:      locations[0].Location.Longitude,
			LatitudeDelta:  0.1,
			LongitudeDelta: 0.1,
		}
	}

	minLat := locations[0].Location.Latitude
	maxLat := minLat
	minLng := locations[0].Location.Longitude
	maxLng := minLng
	for _, item := range locations[1:] {
		minLat = min(minLat, item.Location.Latitude)
		maxLat = max(maxLat, item.Location.Latitude)
		minLng = min(minLng, item.Location.Longitude)
		maxLng = max(maxLng, item.Location.Longitude)
	}

	return Region{
		Latitude:       (minLat + maxLat) / 2,
		Longitude:      (minLng + maxLng) / 2,
		LatitudeDelta:  (maxLat-minLat)*1.5 + 0.01,
		LongitudeDelta: (maxLng-minLng)*1.5 + 0.01,
	}
}
