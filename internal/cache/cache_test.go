package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, time.Minute)
}

func TestFollowerCountRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, ok := c.FollowerCount(ctx, "u1")
	require.False(t, ok)

	c.SetFollowerCount(ctx, "u1", 42)
	n, ok := c.FollowerCount(ctx, "u1")
	require.True(t, ok)
	require.EqualValues(t, 42, n)

	c.InvalidateFollowerCount(ctx, "u1")
	_, ok = c.FollowerCount(ctx, "u1")
	require.False(t, ok)
}

func TestFrontPageRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, ok := c.FrontPage(ctx)
	require.False(t, ok)

	payload := []byte(`{"posts":[]}`)
	c.SetFrontPage(ctx, payload)
	got, ok := c.FrontPage(ctx)
	require.True(t, ok)
	require.Equal(t, payload, got)

	c.InvalidateFrontPage(ctx)
	_, ok = c.FrontPage(ctx)
	require.False(t, ok)
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	_, ok := c.FollowerCount(ctx, "u1")
	require.False(t, ok)
	c.SetFollowerCount(ctx, "u1", 1)
	c.InvalidateFollowerCount(ctx, "u1")
	_, ok = c.FrontPage(ctx)
	require.False(t, ok)
	c.SetFrontPage(ctx, []byte("x"))
	c.InvalidateFrontPage(ctx)
}
