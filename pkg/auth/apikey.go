package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// KeyPrefix marks bearer values as API keys rather than JWTs.
const KeyPrefix = "aok_"

// displayPrefixLen is how much of a key is kept for listings.
const displayPrefixLen = 12

// GenerateAPIKey returns a new plaintext API key. The plaintext is
// shown to the caller exactly once; only its hash is stored.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return KeyPrefix + hex.EncodeToString(buf), nil
}

// HashKey computes the peppered HMAC-SHA256 lookup hash of a key.
// The pepper (API_SECRET_KEY) keeps a leaked database from being
// brute-forceable offline.
func HashKey(pepper, key string) string {
	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(key))
	return hex.EncodeToString(mac.Sum(nil))
}

// DisplayPrefix returns the non-sensitive leading characters of a key.
func DisplayPrefix(key string) string {
	if len(key) <= displayPrefixLen {
		return key
	}
	return key[:displayPrefixLen]
}

// IsAPIKey reports whether a bearer value looks like an API key.
func IsAPIKey(bearer string) bool {
	return strings.HasPrefix(bearer, KeyPrefix)
}
