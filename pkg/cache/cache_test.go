package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	client := NewFromClient(rdb)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestAllow(t *testing.T) {
	ctx := context.Background()

	t.Run("admits up to the limit then rejects", func(t *testing.T) {
		client, _ := setupCache(t)

		var last *Decision
		for i := 0; i < 5; i++ {
			d, err := client.Allow(ctx, "api", "user:u1", 5, time.Minute)
			require.NoError(t, err)
			assert.True(t, d.Allowed, "request %d should be admitted", i+1)
			last = d
		}
		assert.Equal(t, 0, last.Remaining)

		d, err := client.Allow(ctx, "api", "user:u1", 5, time.Minute)
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
		assert.False(t, d.ResetAt.IsZero())
	})

	t.Run("buckets are independent", func(t *testing.T) {
		client, _ := setupCache(t)

		for i := 0; i < 3; i++ {
			d, err := client.Allow(ctx, "auth", "ip:10.0.0.1", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, d.Allowed)
		}

		d, err := client.Allow(ctx, "api", "ip:10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 2, d.Remaining)
	})

	t.Run("counter resets after the window", func(t *testing.T) {
		client, mr := setupCache(t)

		for i := 0; i < 2; i++ {
			_, err := client.Allow(ctx, "api", "user:u2", 2, time.Minute)
			require.NoError(t, err)
		}
		d, err := client.Allow(ctx, "api", "user:u2", 2, time.Minute)
		require.NoError(t, err)
		assert.False(t, d.Allowed)

		// Jump past the window boundary; the key for the new window is fresh.
		mr.FastForward(2 * time.Minute)

		d, err = client.Allow(ctx, "api", "user:u2", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("returns error when redis is down", func(t *testing.T) {
		client, mr := setupCache(t)
		mr.Close()

		_, err := client.Allow(ctx, "api", "user:u3", 5, time.Minute)
		assert.Error(t, err)
	})
}

func TestBlacklist(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		client, _ := setupCache(t)

		found, err := client.IsTokenBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, client.BlacklistToken(ctx, "jti-1", time.Hour))

		found, err = client.IsTokenBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("expires with the token", func(t *testing.T) {
		client, mr := setupCache(t)

		require.NoError(t, client.BlacklistToken(ctx, "jti-2", time.Minute))
		mr.FastForward(2 * time.Minute)

		found, err := client.IsTokenBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("non-positive ttl is a no-op", func(t *testing.T) {
		client, _ := setupCache(t)

		require.NoError(t, client.BlacklistToken(ctx, "jti-3", 0))
		found, err := client.IsTokenBlacklisted(ctx, "jti-3")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestPubSub(t *testing.T) {
	ctx := context.Background()

	t.Run("publish reaches subscriber", func(t *testing.T) {
		client, _ := setupCache(t)

		sub := client.Subscriber(ctx, "execution:e1:events")
		t.Cleanup(func() { _ = sub.Close() })

		// miniredis delivers synchronously once the subscription exists.
		require.NoError(t, client.Publish(ctx, "execution:e1:events", []byte(`{"type":"execution.started"}`)))

		select {
		case msg := <-sub.Channel():
			assert.Equal(t, "execution:e1:events", msg.Channel)
			assert.Contains(t, msg.Payload, "execution.started")
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for pub/sub message")
		}
	})
}
