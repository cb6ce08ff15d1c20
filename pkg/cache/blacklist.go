package cache

import (
	"context"
	"fmt"
	"time"
)

const blacklistPrefix = "blacklist:"

// BlacklistToken marks a JWT id as revoked until the token would have
// expired anyway.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted reports whether a JWT id has been revoked.
func (c *Client) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}
