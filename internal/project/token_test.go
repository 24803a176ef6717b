package project

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken(t *testing.T) {
	a, err := NewAccessToken()
	require.NoError(t, err)

	b, err := NewAccessToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)

	raw, err := base64.RawURLEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, tokenBytes)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "abcdef***", Fingerprint("abcdefghijklmnop"))
	assert.Equal(t, "***", Fingerprint("abc"))
}
