package user

import (
	"fmt"
	"time"
)

// ID identifies a persisted user. The zero value marks a transient aggregate
// that has not been saved yet; the storage adapter assigns the real value
// exactly once on first insert.
type ID int64

func (id ID) IsZero() bool  { return id == 0 }
func (id ID) Int64() int64  { return int64(id) }
func (id ID) String() string { return fmt.Sprintf("%d", int64(id)) }

// User is the aggregate root. All mutations flow through its behaviors; the
// only externally driven state change is the one-shot ID assignment after the
// first successful insert.
type User struct {
	id        ID
	email     Email
	password  Password
	profile   Profile
	createdAt time.Time
}

// Register creates a new transient user. The password is hashed before the
// profile is built, so password validation errors surface first.
func Register(email Email, rawPassword, firstName, lastName string, age int) (*User, error) {
	password, err := HashPassword(rawPassword)
	if err != nil {
		return nil, err
	}
	profile, err := NewProfile(firstName, lastName, age)
	if err != nil {
		return nil, err
	}
	return &User{
		email:     email,
		password:  password,
		profile:   profile,
		createdAt: time.Now().UTC().Truncate(24 * time.Hour),
	}, nil
}

// Reconstitute rehydrates a user from trusted persisted data without re-running
// creation-time validation.
func Reconstitute(id ID, email Email, password Password, profile Profile, createdAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		password:  password,
		profile:   profile,
		createdAt: createdAt,
	}
}

// Authenticate verifies the raw password. Callers cannot distinguish a wrong
// password from a corrupted hash.
func (u *User) Authenticate(rawPassword string) error {
	if !u.password.Verify(rawPassword) {
		return ErrInvalidCredentials
	}
	return nil
}

// ChangeEmail replaces the email value object. Changing to the current email
// is an idempotent no-op.
func (u *User) ChangeEmail(newEmail Email) {
	if u.email.Equals(newEmail) {
		return
	}
	u.email = newEmail
}

// UpdateProfile delegates to Profile.Update; all-or-nothing.
func (u *User) UpdateProfile(firstName, lastName string, age int) error {
	return u.profile.Update(firstName, lastName, age)
}

// ChangePassword re-validates strength and replaces the hash.
func (u *User) ChangePassword(rawPassword string) error {
	password, err := HashPassword(rawPassword)
	if err != nil {
		return err
	}
	u.password = password
	return nil
}

func (u *User) ID() ID              { return u.id }
func (u *User) Email() Email        { return u.email }
func (u *User) Password() Password  { return u.password }
func (u *User) Profile() Profile    { return u.profile }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// SetID marks the transient-to-persisted transition. It is called by the
// repository after a successful insert and has no effect once the ID is set.
func (u *User) SetID(id ID) {
	if !u.id.IsZero() {
		return
	}
	u.id = id
}

// String keeps the password hash out of logs and formatted output.
func (u *User) String() string {
	return fmt.Sprintf("User{id: %d, email: %s, profile: %s, created_at: %s}",
		u.id, u.email, u.profile.FullName(), u.createdAt.Format("2006-01-02"))
}
