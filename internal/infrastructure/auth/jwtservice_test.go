package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/shared/config"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(config.JWTConfig{
		Secret:           "test-secret-at-least-32-characters",
		AccessExpMinutes: 60,
	})
	require.NoError(t, err)
	return svc
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken(7, "reader@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
}

func TestJWTService_RejectsEmptySecret(t *testing.T) {
	_, err := NewJWTService(config.JWTConfig{})
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignToken(t *testing.T) {
	svc := newTestService(t)

	other, err := NewJWTService(config.JWTConfig{
		Secret:           "a-different-secret-entirely-here",
		AccessExpMinutes: 60,
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(7, "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
