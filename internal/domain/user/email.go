package user

import (
	"fmt"
	"strings"
)

// Email is a normalized, validated email address. Two Emails are equal iff
// their normalized (trimmed, lower-cased) forms match.
type Email struct {
	value string
}

// NewEmail normalizes raw and validates its shape: non-empty local part and a
// domain containing at least one dot with no empty segment.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !isValidEmail(normalized) {
		return Email{}, fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	return Email{value: normalized}, nil
}

func isValidEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" || strings.ContainsAny(local, " \t") {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, seg := range strings.Split(domain, ".") {
		if seg == "" {
			return false
		}
	}
	return true
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }

// IsZero reports whether e is the uninitialized Email.
func (e Email) IsZero() bool { return e.value == "" }
