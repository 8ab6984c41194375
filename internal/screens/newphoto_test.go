package screens

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochilaapp/mochila-client/internal/api"
	"github.com/mochilaapp/mochila-client/internal/apperr"
	"github.com/mochilaapp/mochila-client/internal/device"
	"github.com/mochilaapp/mochila-client/internal/validation"
)

type fakeGallery struct {
	photo *device.Photo
	err   error
}

func (f fakeGallery) Pick(context.Context) (*device.Photo, error) {
	return f.photo, f.err
}

func newPickedPhoto(name string) *device.Photo {
	return &device.Photo{
		Filename: name,
		Width:    4000,
		Height:   3000,
		Content:  io.NopCloser(strings.NewReader("jpeg-bytes")),
	}
}

func newUploadBackend(t *testing.T) *api.Uploader {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"secure_url":"https://cdn.example.com/praia.jpg"}`))
	}))
	t.Cleanup(server.Close)
	return api.NewUploader(server.URL, testLogger())
}

func TestNewPhoto_Submit(t *testing.T) {
	mux := http.NewServeMux()
	var gotBody []byte
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p1","albumId":"a1","title":"Praia do Rosa","imageUrl":"https://cdn.example.com/praia.jpg"}`))
	})

	manager := newTestSession(t)
	client := newTestAPI(t, manager, mux)
	n := NewNewPhoto(client, newUploadBackend(t), device.NoCamera{}, fakeGallery{photo: newPickedPhoto("praia.jpg")}, validation.New(), "a1", testLogger())
	defer n.Close()

	require.NoError(t, n.PickFromGallery(context.Background()))
	assert.True(t, n.HasPhoto())
	n.SetTitle("Praia do Rosa")
	n.SetCover(true)

	post, err := n.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
	assert.Contains(t, string(gotBody), `"imageUrl":"https://cdn.example.com/praia.jpg"`)
	assert.Contains(t, string(gotBody), `"isCover":true`)
}

// A missing photo or empty title must abort before the upload.
func TestNewPhoto_SubmitGuards(t *testing.T) {
	manager := newTestSession(t)
	client := newTestAPI(t, manager, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	uploader := api.NewUploader("http://127.0.0.1:1", testLogger())

	n := NewNewPhoto(client, uploader, device.NoCamera{}, fakeGallery{photo: newPickedPhoto("x.jpg")}, validation.New(), "a1", testLogger())
	defer n.Close()

	// No photo picked yet.
	n.SetTitle("Praia")
	_, err := n.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))

	// Photo picked but title cleared.
	require.NoError(t, n.PickFromGallery(context.Background()))
	n.SetTitle("")
	_, err = n.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

// A refused camera permission surfaces as capability denied and leaves
// the draft untouched.
func TestNewPhoto_CameraDenied(t *testing.T) {
	manager := newTestSession(t)
	client := newTestAPI(t, manager, http.NewServeMux())
	n := NewNewPhoto(client, newUploadBackend(t), device.NoCamera{}, fakeGallery{photo: newPickedPhoto("x.jpg")}, validation.New(), "a1", testLogger())
	defer n.Close()

	err := n.Capture(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeDeviceCapabilityDenied, apperr.CodeOf(err))
	assert.False(t, n.HasPhoto())
}

func TestNewPhoto_PreviewUsesPickedDimensions(t *testing.T) {
	manager := newTestSession(t)
	client := newTestAPI(t, manager, http.NewServeMux())
	n := NewNewPhoto(client, newUploadBackend(t), device.NoCamera{}, fakeGallery{photo: newPickedPhoto("x.jpg")}, validation.New(), "a1", testLogger())
	defer n.Close()

	require.NoError(t, n.PickFromGallery(context.Background()))
	size := n.PreviewSize(375)
	assert.Equal(t, 355.0, size.Width)
	assert.Equal(t, 350.0, size.Height)
}
