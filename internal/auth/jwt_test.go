package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "family-dashboard", time.Hour)

	token, err := svc.GenerateToken("mara@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "mara@example.com", claims.Email)
	assert.Equal(t, "family-dashboard", claims.Issuer)
}

func TestJWTExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", "family-dashboard", -time.Minute)

	token, err := svc.GenerateToken("mara@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTWrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", "family-dashboard", time.Hour)
	other := NewJWTService("other-secret", "family-dashboard", time.Hour)

	token, err := svc.GenerateToken("mara@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	svc := NewJWTService("test-secret", "family-dashboard", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
