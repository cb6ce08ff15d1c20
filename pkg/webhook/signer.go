// Package webhook delivers lifecycle events to user-registered HTTP
// endpoints. Deliveries are durable rows claimed by a worker pool, one
// row per attempt, with exponential backoff and auto-disable of
// endpoints that keep failing.
package webhook

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// SecretPrefix marks generated webhook signing secrets.
const SecretPrefix = "whsec_"

// GenerateSecret returns a new random signing secret.
func GenerateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate webhook secret: %w", err)
	}
	return SecretPrefix + hex.EncodeToString(buf), nil
}

// Sign computes the hex HMAC-SHA256 signature over
// "{unix_timestamp}.{payload}". The timestamp is bound into the
// signature so receivers can reject replays.
func Sign(secret string, timestamp time.Time, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp.Unix(), 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a received signature in constant time.
func Verify(secret string, timestamp time.Time, payload []byte, signature string) bool {
	expected := Sign(secret, timestamp, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
