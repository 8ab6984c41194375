package screens

import (
	"log/slog"
	"time"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/device"
	"github.com/mochilaapp/mochila-client/internal/nav"
	"github.com/mochilaapp/mochila-client/internal/session"
	"github.com/mochilaapp/mochila-client/internal/validation"
)

// Factory builds screen controllers on navigation. The shared
// collaborators live for the whole app; each controller lives for one
// visit to its screen.
type Factory struct {
	API      *api.Client
	Uploader *api.Uploader
	Places   *device.PlacesClient
	Camera   device.Camera
	Gallery  device.Gallery
	Locator  device.Locator
	Session  *session.Manager
	Nav      *nav.Navigator
	Validate *validation.Validator
	Debounce time.Duration
	Logger   *slog.Logger
}

// Home builds the home screen controller.
func (f *Factory) Home() *Home {
	return NewHome(f.API, f.Session, f.Debounce, f.Logger)
}

// Album builds the album detail controller.
func (f *Factory) Album(albumID string) *Album {
	return NewAlbum(f.API, albumID, f.Logger)
}

// CreateAlbum builds the new-album controller.
func (f *Factory) CreateAlbum() *CreateAlbum {
	return NewCreateAlbum(f.API, f.Validate, f.Logger)
}

// Post builds the post detail controller.
func (f *Factory) Post(postID string) *Post {
	return NewPost(f.API, postID, f.Logger)
}

// NewPhoto builds the add-photo controller.
func (f *Factory) NewPhoto(albumID string) *NewPhoto {
	return NewNewPhoto(f.API, f.Uploader, f.Camera, f.Gallery, f.Validate, albumID, f.Logger)
}

// TripMap builds the album map controller.
func (f *Factory) TripMap(albumID string) *TripMap {
	return NewTripMap(f.API, albumID, f.Logger)
}

// Login builds the login controller.
func (f *Factory) Login() *Login {
	return NewLogin(f.API, f.Session, f.Nav, f.Validate, f.Logger)
}

// Register builds the registration controller.
func (f *Factory) Register() *Register {
	return NewRegister(f.API, f.Nav, f.Validate, f.Logger)
}

// Profile builds the profile controller.
func (f *Factory) Profile() *Profile {
	return NewProfile(f.API, f.Uploader, f.Gallery, f.Session, f.Validate, f.Logger)
}

// LocationInput builds the location picker controller.
func (f *Factory) LocationInput() *LocationInput {
	return NewLocationInput(f.Places, f.Locator, f.Nav, f.Debounce, f.Logger)
}
