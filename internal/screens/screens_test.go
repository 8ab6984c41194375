package screens

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestSession returns an authenticated manager backed by a throwaway
// store.
func newTestSession(t *testing.T) *session.Manager {
	t.Helper()
	store, err := session.NewStore(t.TempDir(), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	manager := session.NewManager(store, testLogger())
	require.NoError(t, manager.Establish(&domain.Session{
		Token: "test-token",
		User:  &domain.User{ID: "u1", Name: "Ana", Email: "ana@example.com"},
	}))
	return manager
}

// newTestAPI serves handler and returns a client reading tokens from the
// session manager.
func newTestAPI(t *testing.T, manager *session.Manager, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := api.New(server.URL, manager, testLogger())
	require.NoError(t, err)
	return client
}

func waitReady(t *testing.T, ready func() bool) {
	t.Helper()
	require.Eventually(t, ready, time.Second, 5*time.Millisecond)
}
