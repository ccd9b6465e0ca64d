package user

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, raw string) Email {
	t.Helper()
	e, err := NewEmail(raw)
	require.NoError(t, err)
	return e
}

func TestRegister(t *testing.T) {
	u, err := Register(mustEmail(t, "test@example.com"), "SecurePass123", "John", "Doe", 25)
	require.NoError(t, err)

	assert.True(t, u.ID().IsZero(), "a freshly registered user must be transient")
	assert.Equal(t, "test@example.com", u.Email().String())
	assert.Equal(t, "John", u.Profile().FirstName())
	assert.False(t, u.CreatedAt().IsZero())
}

func TestRegister_PasswordValidatedBeforeProfile(t *testing.T) {
	// Both the password and the profile are invalid; the password error wins.
	_, err := Register(mustEmail(t, "test@example.com"), "short", "", "Doe", 17)
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = Register(mustEmail(t, "test@example.com"), "SecurePass123", "", "Doe", 25)
	assert.ErrorIs(t, err, ErrEmptyFirstName)
}

func TestUser_Authenticate(t *testing.T) {
	u, err := Register(mustEmail(t, "test@example.com"), "SecurePass123", "John", "Doe", 25)
	require.NoError(t, err)

	assert.NoError(t, u.Authenticate("SecurePass123"))
	assert.ErrorIs(t, u.Authenticate("WrongPassword"), ErrInvalidCredentials)
}

func TestUser_ChangeEmail(t *testing.T) {
	u, err := Register(mustEmail(t, "test@example.com"), "SecurePass123", "John", "Doe", 25)
	require.NoError(t, err)

	u.ChangeEmail(mustEmail(t, "newemail@example.com"))
	assert.Equal(t, "newemail@example.com", u.Email().String())
}

func TestUser_ChangeEmail_SameEmailIsNoOp(t *testing.T) {
	u, err := Register(mustEmail(t, "test@example.com"), "SecurePass123", "John", "Doe", 25)
	require.NoError(t, err)
	before := *u

	u.ChangeEmail(mustEmail(t, "TEST@example.com"))
	assert.Equal(t, before.Email(), u.Email())
	assert.Equal(t, before.Profile(), u.Profile())
	assert.Equal(t, before.CreatedAt(), u.CreatedAt())
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := Register(mustEmail(t, "test@example.com"), "SecurePass123", "John", "Doe", 25)
	require.NoError(t, err)

	require.NoError(t, u.UpdateProfile("Jane", "Smith", 30))
	assert.Equal(t, "Jane", u.Profile().FirstName())
	assert.Equal(t, "Smith", u.Profile().LastName())
	assert.Equal(t, 30, u.Profile().Age())
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := Register(mustEmail(t, "test@example.com"), "SecurePass123", "John", "Doe", 25)
	require.NoError(t, err)

	assert.ErrorIs(t, u.ChangePassword("weak"), ErrPasswordTooShort)
	assert.NoError(t, u.Authenticate("SecurePass123"), "failed change must keep the old password")

	require.NoError(t, u.ChangePassword("NewSecure456"))
	assert.NoError(t, u.Authenticate("NewSecure456"))
	assert.ErrorIs(t, u.Authenticate("SecurePass123"), ErrInvalidCredentials)
}

func TestUser_SetID_Once(t *testing.T) {
	u, err := Register(mustEmail(t, "test@example.com"), "SecurePass123", "John", "Doe", 25)
	require.NoError(t, err)

	u.SetID(42)
	u.SetID(99)
	assert.Equal(t, ID(42), u.ID())
}

func TestReconstitute_RoundTrip(t *testing.T) {
	original, err := Register(mustEmail(t, "test@example.com"), "SecurePass123", "John", "Doe", 25)
	require.NoError(t, err)

	rehydrated := Reconstitute(
		7,
		original.Email(),
		PasswordFromHash(original.Password().Hash()),
		original.Profile(),
		original.CreatedAt(),
	)

	assert.Equal(t, ID(7), rehydrated.ID())
	assert.Equal(t, original.Email(), rehydrated.Email())
	assert.Equal(t, original.Profile(), rehydrated.Profile())
	assert.NoError(t, rehydrated.Authenticate("SecurePass123"))
}

func TestUser_StringRedactsPassword(t *testing.T) {
	u, err := Register(mustEmail(t, "test@example.com"), "SecurePass123", "John", "Doe", 25)
	require.NoError(t, err)

	s := fmt.Sprintf("%v", u)
	assert.NotContains(t, s, u.Password().Hash())
	assert.Contains(t, s, "test@example.com")
}
