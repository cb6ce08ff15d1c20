package cache

import (
	"context"
	"fmt"
	"time"
)

// Decision is the outcome of a fixed-window rate-limit check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allow increments the fixed-window counter for the identifier and
// reports whether the request fits within the limit. The window is
// aligned to wall-clock boundaries so all replicas agree on it.
//
// On a cache error the caller decides; the gate fails open.
func (c *Client) Allow(ctx context.Context, bucket, id string, limit int, window time.Duration) (*Decision, error) {
	now := time.Now()
	windowStart := now.Truncate(window)
	resetAt := windowStart.Add(window)
	key := fmt.Sprintf("ratelimit:%s:%s:%d", bucket, id, windowStart.Unix())

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	pipe := c.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// Expire a little past the boundary so stragglers still observe it.
	pipe.Expire(ctx, key, window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	count := int(incr.Val())
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &Decision{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
