package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_Valid(t *testing.T) {
	tests := []string{
		"test@example.com",
		"user.name@domain.co.uk",
		"first+tag@sub.domain.org",
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			e, err := NewEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, e.String())
		})
	}
}

func TestNewEmail_Invalid(t *testing.T) {
	tests := []string{
		"",
		"invalid",
		"@example.com",
		"user@",
		"user@domain",
		"user@domain.",
		"user@.com",
		"a@b@c.com",
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := NewEmail(raw)
			assert.ErrorIs(t, err, ErrInvalidEmail)
		})
	}
}

func TestNewEmail_Normalization(t *testing.T) {
	a, err := NewEmail("  TEST@EXAMPLE.COM  ")
	require.NoError(t, err)
	b, err := NewEmail("test@example.com")
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", a.String())
	assert.True(t, a.Equals(b))
}
