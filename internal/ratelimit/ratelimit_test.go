package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_BurstThenDeny(t *testing.T) {
	kl := New(1, 2)

	assert.True(t, kl.Allow("api.example.com"))
	assert.True(t, kl.Allow("api.example.com"))
	assert.False(t, kl.Allow("api.example.com"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	kl := New(1, 1)

	assert.True(t, kl.Allow("api.example.com"))
	assert.False(t, kl.Allow("api.example.com"))
	assert.True(t, kl.Allow("cdn.example.com"))
}

func TestWait_HonorsContextCancellation(t *testing.T) {
	kl := New(0.001, 1)
	require.True(t, kl.Allow("api.example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, kl.Wait(ctx, "api.example.com"))
}

func TestGetLimiter_ConcurrentSameKey(t *testing.T) {
	kl := New(100, 100)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.Allow("api.example.com")
		}()
	}
	wg.Wait()

	kl.mu.RLock()
	defer kl.mu.RUnlock()
	assert.Len(t, kl.limiters, 1)
}
