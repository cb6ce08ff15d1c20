package webhook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IP-literal hosts keep these cases off the network: the resolver
// parses literals without a DNS round trip.
func TestURLPolicyProduction(t *testing.T) {
	var policy URLPolicy
	ctx := context.Background()

	t.Run("public https accepted", func(t *testing.T) {
		assert.NoError(t, policy.Check(ctx, "https://8.8.8.8/hooks"))
	})

	t.Run("http rejected", func(t *testing.T) {
		err := policy.Check(ctx, "http://8.8.8.8/hooks")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "https")
	})

	t.Run("other schemes rejected", func(t *testing.T) {
		assert.Error(t, policy.Check(ctx, "ftp://8.8.8.8/hooks"))
		assert.Error(t, policy.Check(ctx, "ws://8.8.8.8/hooks"))
	})

	t.Run("missing host rejected", func(t *testing.T) {
		assert.Error(t, policy.Check(ctx, "https:///hooks"))
		assert.Error(t, policy.Check(ctx, "not a url at all\x7f"))
	})

	denied := map[string]string{
		"loopback v4":    "https://127.0.0.1/hooks",
		"loopback v6":    "https://[::1]/hooks",
		"localhost name": "https://localhost/hooks",
		"rfc1918 10":     "https://10.0.0.8/hooks",
		"rfc1918 172":    "https://172.16.4.2/hooks",
		"rfc1918 192":    "https://192.168.1.20/hooks",
		"link local":     "https://169.254.169.254/hooks",
		"unspecified":    "https://0.0.0.0/hooks",
	}
	for name, target := range denied {
		t.Run(name+" rejected", func(t *testing.T) {
			assert.Error(t, policy.Check(ctx, target))
		})
	}
}

func TestURLPolicyLoopbackException(t *testing.T) {
	policy := URLPolicy{AllowLoopback: true}
	ctx := context.Background()

	t.Run("http loopback accepted", func(t *testing.T) {
		assert.NoError(t, policy.Check(ctx, "http://127.0.0.1:8080/hooks"))
		assert.NoError(t, policy.Check(ctx, "http://localhost:9999/hooks"))
		assert.NoError(t, policy.Check(ctx, "https://[::1]/hooks"))
	})

	t.Run("private ranges still rejected", func(t *testing.T) {
		assert.Error(t, policy.Check(ctx, "https://10.0.0.8/hooks"))
		assert.Error(t, policy.Check(ctx, "https://169.254.169.254/hooks"))
	})

	t.Run("http to public still rejected", func(t *testing.T) {
		assert.Error(t, policy.Check(ctx, "http://8.8.8.8/hooks"))
	})
}
