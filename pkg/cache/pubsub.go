package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publish sends a payload to a pub/sub channel. Fire-and-forget from
// the publisher's perspective; subscribers on other replicas pick it up.
func (c *Client) Publish(ctx context.Context, channel string, payload []byte) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

// Subscriber returns a pub/sub subscription handle. Channels can be
// added and removed dynamically via Subscribe/Unsubscribe on the
// returned handle; messages arrive on its Channel().
//
// The caller owns the handle and must Close it.
func (c *Client) Subscriber(ctx context.Context, channels ...string) *redis.PubSub {
	return c.rdb.Subscribe(ctx, channels...)
}
