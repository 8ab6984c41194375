package nav

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNavigate_PushesAndPops(t *testing.T) {
	n := New(staticTokens("tok"), testLogger())
	assert.Equal(t, RouteGetStarted, n.Current().Route)

	n.Navigate(RouteHome, nil)
	n.Navigate(RouteAlbum, Params{"albumId": "a1"})

	assert.Equal(t, RouteAlbum, n.Current().Route)
	assert.Equal(t, "a1", n.Current().Params["albumId"])
	assert.Equal(t, 3, n.Depth())

	n.Back()
	assert.Equal(t, RouteHome, n.Current().Route)
}

func TestBack_NoOpOnRoot(t *testing.T) {
	n := New(staticTokens(""), testLogger())
	n.Back()
	assert.Equal(t, RouteGetStarted, n.Current().Route)
	assert.Equal(t, 1, n.Depth())
}

// Authenticated-only destinations redirect to login when no token exists.
func TestNavigate_GatesWithoutToken(t *testing.T) {
	n := New(staticTokens(""), testLogger())

	n.Navigate(RouteHome, nil)
	assert.Equal(t, RouteLogin, n.Current().Route)

	// Public routes pass.
	n.Navigate(RouteRegister, nil)
	assert.Equal(t, RouteRegister, n.Current().Route)
}

func TestNavigateForResult_DeliversValue(t *testing.T) {
	n := New(staticTokens("tok"), testLogger())

	ch := n.NavigateForResult(RoutePhotoLocation, nil)
	assert.Equal(t, RoutePhotoLocation, n.Current().Route)

	n.Return("Praia do Rosa, Imbituba")

	value, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, "Praia do Rosa, Imbituba", value)
	assert.Equal(t, RouteGetStarted, n.Current().Route)

	_, ok = <-ch
	assert.False(t, ok)
}

func TestNavigateForResult_ClosedOnPlainBack(t *testing.T) {
	n := New(staticTokens("tok"), testLogger())

	ch := n.NavigateForResult(RoutePhotoLocation, nil)
	n.Back()

	_, ok := <-ch
	assert.False(t, ok)
}

func TestReset_CollapsesStack(t *testing.T) {
	n := New(staticTokens("tok"), testLogger())
	n.Navigate(RouteHome, nil)
	n.Navigate(RouteAlbum, nil)

	n.Reset(RouteHome)
	assert.Equal(t, RouteHome, n.Current().Route)
	assert.Equal(t, 1, n.Depth())
}

func TestSessionEnded_LandsOnLogin(t *testing.T) {
	tokens := staticTokens("tok")
	n := New(&tokens, testLogger())
	n.Navigate(RouteHome, nil)
	n.Navigate(RouteProfile, nil)

	var routes []Route
	n.Subscribe(func(e Entry) { routes = append(routes, e.Route) })

	tokens = ""
	n.SessionEnded()

	assert.Equal(t, RouteLogin, n.Current().Route)
	assert.Equal(t, 1, n.Depth())
	assert.Equal(t, []Route{RouteLogin}, routes)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	n := New(staticTokens("tok"), testLogger())

	var count int
	unsubscribe := n.Subscribe(func(Entry) { count++ })

	n.Navigate(RouteHome, nil)
	assert.Equal(t, 1, count)

	unsubscribe()
	n.Navigate(RouteAlbum, nil)
	assert.Equal(t, 1, count)
}
