package project

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenBytes = 32

// NewAccessToken returns a URL-safe client portal token with 256 bits of entropy.
func NewAccessToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Fingerprint shortens a token for log lines.
func Fingerprint(token string) string {
	if len(token) <= 6 {
		return "***"
	}

	return token[:6] + "***"
}
