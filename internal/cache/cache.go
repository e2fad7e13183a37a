package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache fronts the hot read paths: follower counts (hit on every profile
// page and follow toggle response) and the anonymous front page. A nil
// *Cache is valid and disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

func followerKey(userID string) string { return fmt.Sprintf("followers:count:%s", userID) }

const frontPageKey = "feed:front"

// FollowerCount returns the cached follower count, or ok=false on miss.
func (c *Cache) FollowerCount(ctx context.Context, userID string) (int64, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}
	v, err := c.client.Get(ctx, followerKey(userID)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Cache) SetFollowerCount(ctx context.Context, userID string, n int64) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, followerKey(userID), strconv.FormatInt(n, 10), c.ttl).Err()
}

func (c *Cache) InvalidateFollowerCount(ctx context.Context, userID string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, followerKey(userID)).Err()
}

// FrontPage returns the cached anonymous page-1 global feed payload.
func (c *Cache) FrontPage(ctx context.Context) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	b, err := c.client.Get(ctx, frontPageKey).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Cache) SetFrontPage(ctx context.Context, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, frontPageKey, payload, c.ttl).Err()
}

// InvalidateFrontPage drops the front page; called after every write that
// changes what it shows (new post, like toggled).
func (c *Cache) InvalidateFrontPage(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, frontPageKey).Err()
}
