package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-unit-tests"

func TestGenerateAndParseToken(t *testing.T) {
	token, expiresAt, err := GenerateToken("reich", "admin", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "reich", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "reich", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestParseTokenTampered(t *testing.T) {
	token, _, err := GenerateToken("reich", "user", testSecret, time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "xxxx"

	_, err = ParseToken(tampered, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("reich", "user", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "a-completely-different-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenExpired(t *testing.T) {
	token, _, err := GenerateToken("reich", "user", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
