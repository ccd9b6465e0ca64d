package user

import "errors"

// Domain errors raised by value object and aggregate validation.
var (
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrPasswordTooShort      = errors.New("password must be at least 8 characters long")
	ErrPasswordTooWeak       = errors.New("password must contain at least one uppercase letter, one lowercase letter, and one number")
	ErrPasswordHashingFailed = errors.New("failed to hash password")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserTooYoung          = errors.New("user must be at least 18 years old")
	ErrInvalidAge            = errors.New("invalid age: must be between 18 and 150")
	ErrEmptyFirstName        = errors.New("first name cannot be empty")
	ErrEmptyLastName         = errors.New("last name cannot be empty")
)

// Repository errors. Adapters wrap their storage-specific failures with these
// sentinels so callers never see a concrete storage technology.
var (
	ErrNotFound    = errors.New("user not found")
	ErrPersistence = errors.New("persistence failure")
	ErrUnexpected  = errors.New("unexpected repository error")
)
