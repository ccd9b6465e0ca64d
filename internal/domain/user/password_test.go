package user

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	p, err := HashPassword("SecurePass123")
	require.NoError(t, err)

	assert.True(t, p.Verify("SecurePass123"))
	assert.False(t, p.Verify("WrongPassword"))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("Short1")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestHashPassword_TooWeak(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no uppercase", "alllowercase1"},
		{"no lowercase", "ALLUPPERCASE1"},
		{"no digit", "NoDigitsHere"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HashPassword(tt.raw)
			assert.ErrorIs(t, err, ErrPasswordTooWeak)
		})
	}
}

func TestPasswordFromHash(t *testing.T) {
	p, err := HashPassword("ValidPass123")
	require.NoError(t, err)

	rehydrated := PasswordFromHash(p.Hash())
	assert.True(t, rehydrated.Verify("ValidPass123"))
}

func TestPassword_Verify_FailClosed(t *testing.T) {
	p := PasswordFromHash("not-a-bcrypt-hash")
	assert.False(t, p.Verify("anything"))
}

func TestPassword_NeverFormatsHash(t *testing.T) {
	p, err := HashPassword("SecurePass123")
	require.NoError(t, err)

	for _, s := range []string{
		p.String(),
		fmt.Sprintf("%v", p),
		fmt.Sprintf("%s", p),
		fmt.Sprintf("%#v", p),
	} {
		assert.Contains(t, s, "[REDACTED]")
		assert.NotContains(t, s, p.Hash())
	}
}
