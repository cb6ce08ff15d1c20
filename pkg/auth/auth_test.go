package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTManager(t *testing.T) {
	t.Run("mint and verify round trip", func(t *testing.T) {
		m := NewJWTManager(testSecret)

		token, err := m.Mint("user-1", "admin", time.Hour)
		require.NoError(t, err)

		claims, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		m := NewJWTManager(testSecret)

		token, err := m.Mint("user-1", "user", -time.Minute)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		m := NewJWTManager(testSecret)
		other := NewJWTManager("ffffffffffffffffffffffffffffffff")

		token, err := m.Mint("user-1", "user", time.Hour)
		require.NoError(t, err)

		_, err = other.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		m := NewJWTManager(testSecret)

		token, err := m.Mint("user-1", "user", time.Hour)
		require.NoError(t, err)

		tampered := token[:len(token)-2] + "xx"
		_, err = m.Verify(tampered)
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		m := NewJWTManager(testSecret)
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestAPIKey(t *testing.T) {
	t.Run("generated keys carry the prefix and are unique", func(t *testing.T) {
		k1, err := GenerateAPIKey()
		require.NoError(t, err)
		k2, err := GenerateAPIKey()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(k1, KeyPrefix))
		assert.True(t, IsAPIKey(k1))
		assert.NotEqual(t, k1, k2)
	})

	t.Run("hash is deterministic per pepper", func(t *testing.T) {
		key, err := GenerateAPIKey()
		require.NoError(t, err)

		h1 := HashKey("pepper-a", key)
		h2 := HashKey("pepper-a", key)
		h3 := HashKey("pepper-b", key)

		assert.Equal(t, h1, h2)
		assert.NotEqual(t, h1, h3)
		assert.Len(t, h1, 64)
	})

	t.Run("display prefix is short and stable", func(t *testing.T) {
		key, err := GenerateAPIKey()
		require.NoError(t, err)

		prefix := DisplayPrefix(key)
		assert.Len(t, prefix, 12)
		assert.True(t, strings.HasPrefix(key, prefix))
	})

	t.Run("jwt-looking bearer is not an api key", func(t *testing.T) {
		assert.False(t, IsAPIKey("eyJhbGciOiJIUzI1NiJ9.x.y"))
	})
}

func TestSecretBox(t *testing.T) {
	key := make([]byte, 32)
	copy(key, "0123456789abcdef0123456789abcdef")

	t.Run("seal and open round trip", func(t *testing.T) {
		box, err := NewSecretBox(key)
		require.NoError(t, err)

		sealed, err := box.Seal("whsec_deadbeef")
		require.NoError(t, err)
		assert.NotContains(t, sealed, "whsec_")

		opened, err := box.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, "whsec_deadbeef", opened)
	})

	t.Run("each seal uses a fresh nonce", func(t *testing.T) {
		box, err := NewSecretBox(key)
		require.NoError(t, err)

		s1, err := box.Seal("same")
		require.NoError(t, err)
		s2, err := box.Seal("same")
		require.NoError(t, err)
		assert.NotEqual(t, s1, s2)
	})

	t.Run("tampered ciphertext fails to open", func(t *testing.T) {
		box, err := NewSecretBox(key)
		require.NoError(t, err)

		sealed, err := box.Seal("secret")
		require.NoError(t, err)

		tampered := "A" + sealed[1:]
		_, err = box.Open(tampered)
		assert.Error(t, err)
	})

	t.Run("wrong key size rejected", func(t *testing.T) {
		_, err := NewSecretBox([]byte("short"))
		assert.Error(t, err)
	})
}
