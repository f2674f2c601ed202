package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30*time.Minute)

	token, exp, err := tm.GenerateToken("jdoe")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", claims.Subject)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 30*time.Minute)

	token, _, err := tm.GenerateTokenWithTTL("jdoe", -time.Minute)
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 30*time.Minute)
	other := NewTokenManager("other-secret", 30*time.Minute)

	token, _, err := tm.GenerateToken("jdoe")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 30*time.Minute)

	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenDefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.GenerateToken("jdoe")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)
}
