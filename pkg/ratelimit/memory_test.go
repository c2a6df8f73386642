package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/karam/musabaqa/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterAllow(t *testing.T) {
	lim := ratelimit.NewMemoryLimiter(ratelimit.Options{
		MaxRequests: 3,
		Window:      time.Minute,
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := lim.Allow(ctx, "login:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := lim.Allow(ctx, "login:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	// Other keys keep their own window.
	ok, err = lim.Allow(ctx, "login:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiterWindowExpires(t *testing.T) {
	lim := ratelimit.NewMemoryLimiter(ratelimit.Options{
		MaxRequests: 1,
		Window:      30 * time.Millisecond,
	})
	ctx := context.Background()

	ok, err := lim.Allow(ctx, "signup:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = lim.Allow(ctx, "signup:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	time.Sleep(50 * time.Millisecond)
	ok, err = lim.Allow(ctx, "signup:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}
