package application

import (
	"context"
	"fmt"

	"user-management-api/internal/domain/user"
)

// Login authenticates by email and password and mints a bearer credential.
// A missing account and a wrong password both read as ErrInvalidCredentials so
// account existence is never leaked.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*AuthToken, error) {
	email, err := user.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}

	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find by email: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.Authenticate(cmd.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// A found user always carries an ID; anything else is an invariant
	// violation in the storage adapter.
	if u.ID().IsZero() {
		return nil, ErrUserNotFound
	}

	token, err := s.Tokens.GenerateToken(ctx, u.ID().Int64(), u.Email().String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	return &AuthToken{AccessToken: token, TokenType: "Bearer"}, nil
}

// Register creates a new account on the public path.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*UserResponse, error) {
	return s.registerUser(ctx, cmd.Email, cmd.Password, cmd.FirstName, cmd.LastName, cmd.Age)
}

// CreateUser creates an account on the authenticated admin path. Same
// validation and conflict semantics as Register.
func (s *Service) CreateUser(ctx context.Context, cmd CreateUserCommand) (*UserResponse, error) {
	return s.registerUser(ctx, cmd.Email, cmd.Password, cmd.FirstName, cmd.LastName, cmd.Age)
}

func (s *Service) registerUser(ctx context.Context, rawEmail, password, firstName, lastName string, age int) (*UserResponse, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}

	// Best-effort pre-check; the unique constraint in storage closes the race.
	exists, err := s.Repo.ExistsWithEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, email)
	}

	u, err := user.Register(email, password, firstName, lastName, age)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.enqueueWelcome(ctx, u)
	s.indexUser(ctx, u)

	return NewUserResponse(u), nil
}
