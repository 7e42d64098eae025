package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// DefaultTimestampTolerance bounds how far an event timestamp may drift from the local clock.
const DefaultTimestampTolerance = 300 * time.Second

// Sign returns the hex HMAC-SHA256 of raw under secret.
func Sign(secret, raw []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(raw)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares the decoded hex signature against the HMAC of raw in constant time.
// An empty secret never verifies.
func VerifySignature(secret, raw []byte, signature string) bool {
	if len(secret) == 0 || signature == "" {
		return false
	}
	provided, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(raw)
	return hmac.Equal(mac.Sum(nil), provided)
}

// WithinTolerance reports whether ts is at most tolerance away from now, in either direction.
func WithinTolerance(ts, now time.Time, tolerance time.Duration) bool {
	diff := now.Sub(ts)
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
