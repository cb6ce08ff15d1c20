// Package cache wraps the Redis client used for rate-limit counters,
// the JWT blacklist, and pub/sub event fan-out.
//
// Every operation is bounded by a short timeout. Callers on the request
// path treat cache errors as advisory (fail-open): an unreachable cache
// must never take the API down with it.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OperationTimeout bounds every cache round-trip.
const OperationTimeout = 1 * time.Second

// Client wraps a Redis connection with deadline-bound helpers.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis using a redis:// URL and verifies the connection.
func New(ctx context.Context, url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// NewFromClient wraps an existing Redis client (useful for testing
// against miniredis).
func NewFromClient(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping checks cache connectivity.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, OperationTimeout)
}
