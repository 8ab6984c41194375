package domain

import "time"

// Post is a single geotagged photo entry belonging to an album.
type Post struct {
	ID           string    `json:"id"`
	AlbumID      string    `json:"albumId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Grade        float64   `json:"grade"`
	NameLocation string    `json:"nameLocation,omitempty"`
	Location     *Location `json:"location,omitempty"`
	IsCover      bool      `json:"isCover"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasLocation reports whether the post carries a map coordinate.
func (p *Post) HasLocation() bool {
	return p.Location != nil
}

// PostDraft is the client-side payload for creating a post. The image is
// uploaded to the CDN first; ImageURL holds the resulting secure URL.
type PostDraft struct {
	AlbumID      string    `json:"albumId" validate:"required"`
	Title        string    `json:"title" validate:"required,max=80"`
	Description  string    `json:"description" validate:"max=2000"`
	ImageURL     string    `json:"imageUrl" validate:"required,url"`
	NameLocation string    `json:"nameLocation,omitempty"`
	Location     *Location `json:"location,omitempty"`
	IsCover      bool      `json:"isCover"`
}

// PostPatch carries the editable fields of a post. Nil fields are left
// untouched by the server.
type PostPatch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Grade        *float64  `json:"grade,omitempty"`
	NameLocation *string   `json:"nameLocation,omitempty"`
	Location     *Location `json:"location,omitempty"`
	IsCover      *bool     `json:"isCover,omitempty"`
}

// PostLocation is one entry of an album's trip map: the post identity plus
// its coordinate and place label.
type PostLocation struct {
	PostID       string   `json:"id"`
	Title        string   `json:"title"`
	NameLocation string   `json:"nameLocation"`
	Location     Location `json:"location"`
}
