package application

import (
	"user-management-api/internal/domain/user"
)

// Commands accepted from the presentation layer.

type LoginCommand struct {
	Email    string
	Password string
}

type RegisterCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Age       int
}

// CreateUserCommand mirrors RegisterCommand but travels the authenticated
// admin path.
type CreateUserCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Age       int
}

type UpdateUserCommand struct {
	Email     string
	FirstName string
	LastName  string
	Age       int
}

type ListUsersQuery struct {
	Page        int
	RowsPerPage int
}

// AuthToken is the login response DTO.
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the outward-facing user DTO.
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	CreatedAt string `json:"created_at"`
}

// NewUserResponse maps a persisted aggregate to its DTO.
func NewUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID().Int64(),
		Email:     u.Email().String(),
		FirstName: u.Profile().FirstName(),
		LastName:  u.Profile().LastName(),
		Age:       u.Profile().Age(),
		CreatedAt: u.CreatedAt().Format("2006-01-02"),
	}
}
