package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs_MatchesByCode(t *testing.T) {
	err := Client(http.StatusNotFound, "album not found")
	assert.True(t, Is(err, ErrClient))
	assert.False(t, Is(err, ErrServer))

	wrapped := fmt.Errorf("load album: %w", err)
	assert.True(t, Is(wrapped, ErrClient))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeUnauthenticated, CodeOf(Unauthenticated("no session token")))
	assert.Equal(t, CodeNetwork, CodeOf(fmt.Errorf("fetch: %w", Network("timeout"))))
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Network("timeout").Retryable())
	assert.True(t, Server(http.StatusBadGateway).Retryable())
	assert.False(t, Client(http.StatusBadRequest, "bad").Retryable())
	assert.False(t, Validation("missing title").Retryable())
	assert.False(t, CapabilityDenied("camera").Retryable())
}

func TestWithCause_PreservesChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Network("no response from server").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, CodeNetwork, err.Code)
}

func TestValidationWithDetails_CarriesFields(t *testing.T) {
	details := map[string]string{"title": "is required"}
	err := ValidationWithDetails("validation failed", details)

	var e *Error
	require.True(t, As(err, &e))
	assert.Equal(t, details, e.Details)
	assert.Equal(t, CodeValidation, e.Code)
}

func TestCapabilityDenied_Message(t *testing.T) {
	err := CapabilityDenied("camera")
	assert.Equal(t, "camera permission denied", err.Error())
	assert.True(t, Is(err, ErrCapabilityDenied))
}
