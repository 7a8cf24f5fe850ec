package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "same input must hash differently")
	require.NotEqual(t, "secret1", h1)
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	ok, err := VerifyPassword("secret1", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err, "a mismatch is not an error")
	require.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	ok, err := VerifyPassword("secret1", "not-a-bcrypt-hash")
	require.Error(t, err)
	require.False(t, ok)
}
