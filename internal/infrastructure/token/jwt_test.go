package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", 168*time.Hour)

	s, err := m.GenerateToken(context.Background(), 42, "john@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, s)

	claims, err := m.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "john@x.com", claims.Subject)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 167*time.Hour)
	assert.LessOrEqual(t, remaining, 168*time.Hour)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour)
	other := NewJWTManager("secret-b", time.Hour)

	s, err := m.GenerateToken(context.Background(), 1, "a@b.com")
	require.NoError(t, err)

	_, err = other.Parse(s)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	s, err := m.GenerateToken(context.Background(), 1, "a@b.com")
	require.NoError(t, err)

	_, err = m.Parse(s)
	assert.Error(t, err)
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
