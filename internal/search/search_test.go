package search

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochilaapp/mochila-client/internal/loadable"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Typing a word one keystroke at a time must produce exactly one request,
// carrying the final text.
func TestSetQuery_DebouncesToSingleRequest(t *testing.T) {
	var calls atomic.Int32
	var mu sync.Mutex
	var queries []string

	c := New(func(ctx context.Context, query string) ([]string, error) {
		calls.Add(1)
		mu.Lock()
		queries = append(queries, query)
		mu.Unlock()
		return []string{"result for " + query}, nil
	}, 50*time.Millisecond, testLogger())
	defer c.Close()

	for _, text := range []string{"p", "pa", "par", "pari", "paris"} {
		c.SetQuery(text)
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return c.State().Ready()
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, int32(1), calls.Load())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"paris"}, queries)
	assert.Equal(t, []string{"result for paris"}, c.State().Data)
}

// Emptying the field before the window elapses must clear results
// synchronously and never touch the network.
func TestSetQuery_EmptyShortCircuits(t *testing.T) {
	var calls atomic.Int32
	c := New(func(ctx context.Context, query string) ([]string, error) {
		calls.Add(1)
		return nil, nil
	}, 50*time.Millisecond, testLogger())
	defer c.Close()

	c.SetQuery("par")
	c.SetQuery("")

	assert.Equal(t, loadable.StatusIdle, c.State().Status)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, loadable.StatusIdle, c.State().Status)
}

// Emptying the field while a request is in flight discards its response.
func TestSetQuery_EmptyDiscardsInFlight(t *testing.T) {
	block := make(chan struct{})
	c := New(func(ctx context.Context, query string) ([]string, error) {
		<-block
		return []string{"late"}, nil
	}, 10*time.Millisecond, testLogger())
	defer c.Close()

	c.SetQuery("paris")
	require.Eventually(t, func() bool {
		return c.State().Loading()
	}, time.Second, time.Millisecond)

	c.SetQuery("")
	assert.Equal(t, loadable.StatusIdle, c.State().Status)

	close(block)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, loadable.StatusIdle, c.State().Status)
}

func TestQuery_EchoesLatestText(t *testing.T) {
	c := New(func(ctx context.Context, query string) (int, error) {
		return 0, nil
	}, time.Hour, testLogger())
	defer c.Close()

	c.SetQuery("pa")
	c.SetQuery("paris")
	assert.Equal(t, "paris", c.Query())
	assert.True(t, c.Searching())

	c.SetQuery("")
	assert.False(t, c.Searching())
}

func TestClose_StopsPendingTimer(t *testing.T) {
	var calls atomic.Int32
	c := New(func(ctx context.Context, query string) (int, error) {
		calls.Add(1)
		return 0, nil
	}, 20*time.Millisecond, testLogger())

	c.SetQuery("paris")
	c.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestNew_DefaultDebounce(t *testing.T) {
	c := New(func(ctx context.Context, query string) (int, error) {
		return 0, nil
	}, 0, testLogger())
	defer c.Close()

	assert.Equal(t, DefaultDebounce, c.debounce)
}
