package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "doorkey-test-pepper")
	SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestHashPasswordProducesPHCFormat(t *testing.T) {
	for _, password := range []string{
		"password123",
		"P@ssw0rd!#$%^&*()",
		strings.Repeat("a", 100),
		"",
		"пароль🔒密码",
	} {
		hash, err := HashPassword(password)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m="))

		parts := strings.Split(hash, "$")
		require.Len(t, parts, 6)
		require.NotEmpty(t, parts[4], "salt")
		require.NotEmpty(t, parts[5], "derived key")
	}
}

func TestHashPasswordSaltsAreUnique(t *testing.T) {
	a, err := HashPassword("samepassword")
	require.NoError(t, err)
	b, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	require.True(t, VerifyPassword("correct horse battery staple", hash))
	require.False(t, VerifyPassword("correct horse battery stale", hash))
	require.False(t, VerifyPassword("", hash))
}

func TestVerifyPasswordMalformedHashes(t *testing.T) {
	// Malformed hashes must verify false, never panic or error.
	for _, encoded := range []string{
		"",
		"plainly-not-a-hash",
		"$argon2id$v=19$m=19456,t=2,p=1$onlyfourparts",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=what,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$",
	} {
		require.False(t, VerifyPassword("whatever", encoded), "hash %q", encoded)
	}
}

func TestVerifyPasswordDependsOnPepper(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	require.True(t, VerifyPassword("pw", hash))

	// Repoint the pepper at a fresh file; old hashes stop verifying.
	otherPepper := filepath.Join(t.TempDir(), "other-pepper")
	t.Cleanup(func() {
		SetPepperPath(filepath.Join(os.TempDir(), "doorkey-test-pepper"))
	})
	SetPepperPath(otherPepper)

	require.False(t, VerifyPassword("pw", hash))
}
