package screens

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlbumBackend(t *testing.T, patchHits *atomic.Int32) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /albums/a1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"a1","title":"Praias","cost":"1500"}`))
	})
	mux.HandleFunc("GET /albums/a1/posts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p1","albumId":"a1","title":"Pôr do sol"},{"id":"p2","albumId":"a1","title":"Trilha"}]`))
	})
	mux.HandleFunc("PATCH /albums/a1/title", func(w http.ResponseWriter, r *http.Request) {
		if patchHits != nil {
			patchHits.Add(1)
		}
		w.Write([]byte(`{"id":"a1","title":"Praias do Sul"}`))
	})
	mux.HandleFunc("DELETE /albums/a1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"album deleted","details":{"postsDeleted":2}}`))
	})
	return mux
}

func TestAlbum_LoadsAlbumAndPosts(t *testing.T) {
	manager := newTestSession(t)
	client := newTestAPI(t, manager, newAlbumBackend(t, nil))

	a := NewAlbum(client, "a1", testLogger())
	defer a.Close()

	a.Data.Mount()
	waitReady(t, func() bool { return a.Data.State().Ready() })

	data := a.Data.State().Data
	assert.Equal(t, "Praias", data.First.Title)
	require.Len(t, data.Second, 2)
	assert.Equal(t, "R$ 1.500,00", a.Cost(data.First))
}

func TestAlbum_RenameReloads(t *testing.T) {
	var patchHits atomic.Int32
	manager := newTestSession(t)
	client := newTestAPI(t, manager, newAlbumBackend(t, &patchHits))

	a := NewAlbum(client, "a1", testLogger())
	defer a.Close()
	a.Data.Mount()
	waitReady(t, func() bool { return a.Data.State().Ready() })

	first := a.Data.State().FetchedAt
	require.NoError(t, a.Rename(context.Background(), "Praias do Sul"))

	assert.Equal(t, int32(1), patchHits.Load())
	waitReady(t, func() bool {
		s := a.Data.State()
		return s.Ready() && s.FetchedAt.After(first)
	})
}

func TestAlbum_DeleteReportsCascade(t *testing.T) {
	manager := newTestSession(t)
	client := newTestAPI(t, manager, newAlbumBackend(t, nil))

	a := NewAlbum(client, "a1", testLogger())
	defer a.Close()

	result, err := a.Delete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.PostsDeleted)
}
