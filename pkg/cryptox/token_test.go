package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := GenerateToken(0)
		require.Error(t, err)
		_, err = GenerateToken(-1)
		require.Error(t, err)
	})

	t.Run("encodes the requested entropy", func(t *testing.T) {
		token, err := GenerateToken(TokenSize128)
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		require.Len(t, raw, TokenSize128)
	})

	t.Run("tokens do not repeat", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for range 1000 {
			token, err := GenerateToken(TokenSize128)
			require.NoError(t, err)

			_, dup := seen[token]
			require.False(t, dup, "token collision")
			seen[token] = struct{}{}
		}
	})
}

func TestFingerprintToken(t *testing.T) {
	token, err := GenerateToken(TokenSize256)
	require.NoError(t, err)

	fp := FingerprintToken(token)
	require.Equal(t, fp, FingerprintToken(token), "fingerprint must be deterministic")
	require.NotEqual(t, token, fp)
	require.Len(t, fp, 43) // SHA-256, base64url without padding

	other, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, fp, FingerprintToken(other))
}
