package webhook

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	a, err := GenerateSecret()
	require.NoError(t, err)
	b, err := GenerateSecret()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, SecretPrefix))
	assert.Len(t, a, len(SecretPrefix)+64, "32 random bytes hex encoded")
	assert.NotEqual(t, a, b)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	secret, err := GenerateSecret()
	require.NoError(t, err)

	payload := []byte(`{"id":"evt-1","type":"execution.completed"}`)
	ts := time.Now()

	sig := Sign(secret, ts, payload)
	assert.Len(t, sig, 64, "hex sha256")
	assert.True(t, Verify(secret, ts, payload, sig))
}

func TestVerifyRejectsTampering(t *testing.T) {
	secret, err := GenerateSecret()
	require.NoError(t, err)
	payload := []byte(`{"id":"evt-1"}`)
	ts := time.Unix(1700000000, 0)
	sig := Sign(secret, ts, payload)

	t.Run("payload bit flip", func(t *testing.T) {
		tampered := append([]byte(nil), payload...)
		tampered[3] ^= 0x01
		assert.False(t, Verify(secret, ts, tampered, sig))
	})

	t.Run("timestamp shift", func(t *testing.T) {
		assert.False(t, Verify(secret, ts.Add(time.Second), payload, sig))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := GenerateSecret()
		require.NoError(t, err)
		assert.False(t, Verify(other, ts, payload, sig))
	})

	t.Run("signature bit flip", func(t *testing.T) {
		bad := []byte(sig)
		if bad[0] == 'a' {
			bad[0] = 'b'
		} else {
			bad[0] = 'a'
		}
		assert.False(t, Verify(secret, ts, payload, string(bad)))
	})
}

func TestSignatureBoundToTimestamp(t *testing.T) {
	// Same payload, different timestamps: different signatures, so a
	// replayed body cannot reuse an old signature.
	secret := "whsec_test"
	payload := []byte(`{}`)
	s1 := Sign(secret, time.Unix(1000, 0), payload)
	s2 := Sign(secret, time.Unix(2000, 0), payload)
	assert.NotEqual(t, s1, s2)
}
