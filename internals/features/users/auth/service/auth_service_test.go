package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignAndParseToken(t *testing.T) {
	userID := uuid.New()
	secret := "test-secret"

	tokenStr, err := signToken(userID, "bendahara", secret, time.Minute)
	require.NoError(t, err)

	claims, err := parseToken(tokenStr, secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["id"])
	assert.Equal(t, "bendahara", claims["role"])
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenStr, err := signToken(uuid.New(), "admin", "secret-a", time.Minute)
	require.NoError(t, err)

	_, err = parseToken(tokenStr, "secret-b")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	tokenStr, err := signToken(uuid.New(), "admin", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = parseToken(tokenStr, "secret")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia-123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-123", hashed)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("rahasia-123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("salah")))
}

func TestTTLDefaults(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL_MINUTES", "")
	t.Setenv("JWT_REFRESH_TTL_HOURS", "")
	assert.Equal(t, 15*time.Minute, accessTTL())
	assert.Equal(t, 168*time.Hour, refreshTTL())

	t.Setenv("JWT_ACCESS_TTL_MINUTES", "30")
	t.Setenv("JWT_REFRESH_TTL_HOURS", "48")
	assert.Equal(t, 30*time.Minute, accessTTL())
	assert.Equal(t, 48*time.Hour, refreshTTL())
}
