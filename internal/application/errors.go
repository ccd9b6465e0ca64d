// Package application orchestrates the user domain against the repository and
// token service ports. Errors here are transport-agnostic; the HTTP layer maps
// them to status codes.
package application

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidation         = errors.New("validation error")
)
