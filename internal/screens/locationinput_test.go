package screens

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochilaapp/mochila-client/internal/apperr"
	"github.com/mochilaapp/mochila-client/internal/device"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/nav"
)

func newPlacesBackend(t *testing.T) *device.PlacesClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/autocomplete/json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))
		w.Write([]byte(`{"status":"OK","predictions":[` +
			`{"place_id":"pl1","description":"Praia do Rosa, Imbituba"},` +
			`{"place_id":"pl2","description":"Praia do Rosa Norte, Imbituba"}]}`))
	})
	mux.HandleFunc("/details/json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pl1", r.URL.Query().Get("place_id"))
		w.Write([]byte(`{"status":"OK","result":{"geometry":{"location":{"lat":-28.13,"lng":-48.64}}}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return device.NewPlacesClient(server.URL, "test-key", testLogger())
}

func TestLocationInput_TypeDebouncesSuggestions(t *testing.T) {
	manager := newTestSession(t)
	navigator := nav.New(manager, testLogger())
	l := NewLocationInput(newPlacesBackend(t), device.NoLocator{}, navigator, 20*time.Millisecond, testLogger())
	defer l.Close()

	l.Type("pra")
	l.Type("praia do rosa")

	waitReady(t, func() bool { return l.Suggestions.State().Ready() })
	require.Len(t, l.Suggestions.State().Data, 2)
	assert.Equal(t, "Praia do Rosa, Imbituba", l.Suggestions.State().Data[0].Description)
}

// Choosing a suggestion resolves it and hands the place back to the
// screen that opened the picker.
func TestLocationInput_ChooseReturnsPlace(t *testing.T) {
	manager := newTestSession(t)
	navigator := nav.New(manager, testLogger())
	result := navigator.NavigateForResult(nav.RoutePhotoLocation, nil)

	l := NewLocationInput(newPlacesBackend(t), device.NoLocator{}, navigator, 20*time.Millisecond, testLogger())
	defer l.Close()

	require.NoError(t, l.Choose(context.Background(), device.Suggestion{
		ID:          "pl1",
		Description: "Praia do Rosa, Imbituba",
	}))

	place, ok := (<-result).(*device.Place)
	require.True(t, ok)
	assert.Equal(t, "Praia do Rosa, Imbituba", place.Description)
	assert.InDelta(t, -28.13, place.Location.Latitude, 1e-9)
	assert.InDelta(t, -48.64, place.Location.Longitude, 1e-9)
}

type fixedLocator struct {
	pos domain.Location
}

func (f fixedLocator) Position(context.Context) (domain.Location, error) {
	return f.pos, nil
}

func TestLocationInput_UseCurrentPosition(t *testing.T) {
	manager := newTestSession(t)
	navigator := nav.New(manager, testLogger())
	result := navigator.NavigateForResult(nav.RoutePhotoLocation, nil)

	locator := fixedLocator{pos: domain.Location{Latitude: -28.13, Longitude: -48.64}}
	l := NewLocationInput(newPlacesBackend(t), locator, navigator, 20*time.Millisecond, testLogger())
	defer l.Close()

	require.NoError(t, l.UseCurrentPosition(context.Background()))

	place, ok := (<-result).(*device.Place)
	require.True(t, ok)
	assert.InDelta(t, -28.13, place.Location.Latitude, 1e-9)
}

func TestLocationInput_UseCurrentPositionDenied(t *testing.T) {
	manager := newTestSession(t)
	navigator := nav.New(manager, testLogger())
	navigator.Navigate(nav.RoutePhotoLocation, nil)

	l := NewLocationInput(newPlacesBackend(t), device.NoLocator{}, navigator, 20*time.Millisecond, testLogger())
	defer l.Close()

	err := l.UseCurrentPosition(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeDeviceCapabilityDenied, apperr.CodeOf(err))
	assert.Equal(t, nav.RoutePhotoLocation, navigator.Current().Route)
}

func TestLocationInput_CancelGoesBack(t *testing.T) {
	manager := newTestSession(t)
	navigator := nav.New(manager, testLogger())
	navigator.Navigate(nav.RouteNewPhoto, nav.Params{"albumId": "a1"})
	navigator.Navigate(nav.RoutePhotoLocation, nil)

	l := NewLocationInput(newPlacesBackend(t), device.NoLocator{}, navigator, 20*time.Millisecond, testLogger())
	defer l.Close()

	l.Cancel()
	assert.Equal(t, nav.RouteNewPhoto, navigator.Current().Route)
}
