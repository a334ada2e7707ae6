package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSessionToken generates an opaque random session token.
// 32 random bytes hex-encoded: 256 bits of entropy, 64 characters.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
