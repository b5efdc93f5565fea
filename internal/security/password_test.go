package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	ok, err := VerifyPassword("hunter22", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword("hunter23", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, string(first), string(second))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	_, err := VerifyPassword("whatever", []byte("$bcrypt$nope"))
	require.Error(t, err)

	_, err = VerifyPassword("whatever", []byte(""))
	require.Error(t, err)
}
