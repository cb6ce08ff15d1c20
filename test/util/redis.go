package util

import (
	"testing"

	"github.com/agent-orchestra/orchestra/pkg/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// SetupTestCache starts an in-process miniredis and returns a cache
// client bound to it. Both are torn down with the test.
func SetupTestCache(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	client := cache.NewFromClient(rdb)
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
