package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<bucket>
type RateLimitStore struct {
	client *redis.Client
}

// NewRateLimitStore creates a RateLimitStore wrapping the given Redis client.
func NewRateLimitStore(client *redis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// Incr increments the counter for bucket and returns the new count. The
// window TTL is set when the counter is first created, so the count resets
// once the window elapses.
func (s *RateLimitStore) Incr(ctx context.Context, bucket string, window time.Duration) (int64, error) {
	key := fmt.Sprintf("ratelimit:%s", bucket)

	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return n, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n, nil
}
