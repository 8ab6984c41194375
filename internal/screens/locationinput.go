package screens

import (
	"context"
	"log/slog"
	"time"

	"github.com/mochilaapp/mochila-client/internal/device"
	"github.com/mochilaapp/mochila-client/internal/nav"
	"github.com/mochilaapp/mochila-client/internal/search"
)

// LocationInput drives the location picker opened by the new-photo and
// new-album forms. Typing is debounced into autocomplete lookups; choosing
// a suggestion resolves its coordinates and returns the place to the
// opening screen through the navigator.
type LocationInput struct {
	places  *device.PlacesClient
	locator device.Locator
	nav     *nav.Navigator
	logger  *slog.Logger

	Suggestions *search.Controller[[]device.Suggestion]
}

// NewLocationInput creates the picker controller.
func NewLocationInput(places *device.PlacesClient, locator device.Locator, navigator *nav.Navigator, debounce time.Duration, logger *slog.Logger) *LocationInput {
	return &LocationInput{
		places:  places,
		locator: locator,
		nav:     navigator,
		logger:  logger,
		Suggestions: search.New(func(ctx context.Context, query string) ([]device.Suggestion, error) {
			return places.Autocomplete(ctx, query)
		}, debounce, logger),
	}
}

// Type records a keystroke in the picker's input.
func (l *LocationInput) Type(text string) {
	l.Suggestions.SetQuery(text)
}

// Choose resolves the suggestion and hands the place back to the screen
// that opened the picker.
func (l *LocationInput) Choose(ctx context.Context, s device.Suggestion) error {
	place, err := l.places.Resolve(ctx, s)
	if err != nil {
		return err
	}
	l.nav.Return(place)
	return nil
}

// UseCurrentPosition returns the device's position to the opening screen
// without an address lookup. A refused location permission aborts with a
// capability-denied error and the picker stays open.
func (l *LocationInput) UseCurrentPosition(ctx context.Context) error {
	pos, err := l.locator.Position(ctx)
	if err != nil {
		return err
	}
	l.nav.Return(&device.Place{Description: "Localização atual", Location: pos})
	return nil
}

// Cancel leaves the picker without choosing.
func (l *LocationInput) Cancel() {
	l.nav.Back()
}

// Close releases the picker's controller on unmount.
func (l *LocationInput) Close() {
	l.Suggestions.Close()
}
