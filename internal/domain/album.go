package domain

// TripType classifies the kind of destination an album covers.
type TripType string

// Trip types selectable as home-screen filters.
const (
	TripTypeBeach    TripType = "beach"
	TripTypeMountain TripType = "mountain"
	TripTypeCity     TripType = "city"
	TripTypeForest   TripType = "forest"
	TripTypeWork     TripType = "work"
)

// TripActivity classifies the main activity of a trip.
type TripActivity string

// Trip activities selectable as home-screen filters.
const (
	TripActivityDiving  TripActivity = "mergulho"
	TripActivityCycling TripActivity = "pedal"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Album is a user-created trip collection containing photo posts.
// Grade is the server-derived average of the album's post grades (0-5).
type Album struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Destination string       `json:"destination"`
	TypeTrip    TripType     `json:"typeTrip"`
	Activity    TripActivity `json:"tripActivity"`
	Difficulty  string       `json:"difficulty"`
	TimeTravel  string       `json:"timeTravel"`
	Cost        string       `json:"cost"`
	Grade       float64      `json:"grade"`
	Location    *Location    `json:"location,omitempty"`
	CoverPostID string       `json:"coverPostId,omitempty"`
	CoverURL    string       `json:"coverUrl,omitempty"`
}

// HasLocation reports whether the album carries a map coordinate.
func (a *Album) HasLocation() bool {
	return a.Location != nil
}

// AlbumDraft is the client-side payload for creating an album.
type AlbumDraft struct {
	Title       string       `json:"title" validate:"required,max=80"`
	Description string       `json:"description" validate:"max=2000"`
	Destination string       `json:"destination" validate:"required,max=120"`
	TypeTrip    TripType     `json:"typeTrip" validate:"omitempty,oneof=beach mountain city forest work"`
	Activity    TripActivity `json:"tripActivity" validate:"omitempty,oneof=mergulho pedal"`
	Difficulty  string       `json:"difficulty"`
	TimeTravel  string       `json:"timeTravel"`
	Cost        string       `json:"cost"`
	Location    *Location    `json:"location,omitempty"`
}

// DeleteAlbumResult reports the server-side cascade of an album deletion.
type DeleteAlbumResult struct {
	PostsDeleted int `json:"postsDeleted"`
}
