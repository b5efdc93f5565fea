package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken("secret", "admin-1", "admin@example.com", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "admin-1", claims.AdminID)
	require.Equal(t, "admin@example.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "admin-1", claims.Subject)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken("right-secret", "admin-1", "a@b.co", "moderator", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "wrong-secret")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseSessionToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken("secret", "admin-1", "a@b.co", "moderator", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret")
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ParseSessionToken("not.a.token", "secret")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
