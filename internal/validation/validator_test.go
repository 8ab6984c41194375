package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochilaapp/mochila-client/internal/apperr"
	"github.com/mochilaapp/mochila-client/internal/domain"
	"github.com/mochilaapp/mochila-client/internal/validation"
)

func TestValidate_Passes(t *testing.T) {
	v := validation.New()

	err := v.Validate(domain.Credentials{Email: "ana@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestValidate_CollectsFieldMessages(t *testing.T) {
	v := validation.New()

	err := v.Validate(domain.Registration{Name: "A", Email: "not-an-email", Password: "123"})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))

	var e *apperr.Error
	require.True(t, apperr.As(err, &e))

	fields, ok := e.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be at least 2 characters", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be at least 6 characters", fields["password"])
}

// Error messages key on the JSON field name, not the Go field name.
func TestValidate_UsesJSONNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(domain.PostDraft{AlbumID: "a1", Title: "Praia", ImageURL: "not a url"})
	require.Error(t, err)

	var e *apperr.Error
	require.True(t, apperr.As(err, &e))
	fields := e.Details.(map[string]string)
	assert.Contains(t, fields, "imageUrl")
	assert.Equal(t, "must be a valid URL", fields["imageUrl"])
}

func TestValidate_OneOf(t *testing.T) {
	v := validation.New()

	err := v.Validate(domain.AlbumDraft{
		Title:       "Praias do Sul",
		Destination: "Santa Catarina",
		TypeTrip:    "desert",
	})
	require.Error(t, err)

	var e *apperr.Error
	require.True(t, apperr.As(err, &e))
	fields := e.Details.(map[string]string)
	assert.Equal(t, "must be one of: beach mountain city forest work", fields["typeTrip"])
}
