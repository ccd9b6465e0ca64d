package handlers

import (
	"errors"
	"net/http"

	"user-management-api/internal/application"
	"user-management-api/internal/domain/user"
)

// statusFor maps application and domain errors to HTTP status codes. The error
// kind decides the code; detail strings pass through untouched.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrEmailAlreadyExists):
		return http.StatusConflict
	case isDomainValidation(err), errors.Is(err, application.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func isDomainValidation(err error) bool {
	for _, target := range []error{
		user.ErrInvalidEmail,
		user.ErrPasswordTooShort,
		user.ErrPasswordTooWeak,
		user.ErrUserTooYoung,
		user.ErrInvalidAge,
		user.ErrEmptyFirstName,
		user.ErrEmptyLastName,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// messageFor hides internal details for server-side failures and surfaces the
// error kind for everything else.
func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
