package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(secret, "abc", []int{3, 1, 4, 0, 5, 2}, 7, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4, 0, 5, 2}, claims.Selection)
	assert.Equal(t, 7, claims.PoolSize)
	assert.Equal(t, "abc", claims.SessionID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken(secret, "abc", []int{0}, 1, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken(secret, "abc", []int{0}, 1, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(secret, "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(secret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
