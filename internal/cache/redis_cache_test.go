package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping integration test")
	}

	ctx := context.Background()
	c, err := NewRedisCache(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	key := "portfolio-wizard-storage:redis-test"
	defer c.Delete(ctx, key)

	got, err := c.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	snap := sampleSnapshot()
	require.NoError(t, c.Save(ctx, key, snap))

	got, err = c.Load(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.State.Allocations, got.State.Allocations)

	require.NoError(t, c.Delete(ctx, key))
	got, err = c.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}
