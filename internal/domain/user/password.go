package user

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Password holds only a bcrypt hash of the raw secret. The raw password is
// never stored, and the hash never leaks through String/GoString/Format.
type Password struct {
	hash string
}

// HashPassword validates strength and hashes raw with bcrypt at the default
// cost. The cost factor is fixed and not user-tunable.
func HashPassword(raw string) (Password, error) {
	if err := validateStrength(raw); err != nil {
		return Password{}, err
	}
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return Password{}, fmt.Errorf("%w: %v", ErrPasswordHashingFailed, err)
	}
	return Password{hash: string(b)}, nil
}

// PasswordFromHash wraps an already-hashed value loaded from storage. Trusted
// rehydration only: no validation is performed.
func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

// Verify compares raw against the stored hash. Fail-closed: any internal
// comparison failure reads as a mismatch.
func (p Password) Verify(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(raw)) == nil
}

// Hash exposes the stored hash for the persistence adapter.
func (p Password) Hash() string { return p.hash }

func validateStrength(raw string) error {
	if len(raw) < 8 {
		return ErrPasswordTooShort
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrPasswordTooWeak
	}
	return nil
}

func (p Password) String() string   { return "[REDACTED]" }
func (p Password) GoString() string { return "user.Password([REDACTED])" }
