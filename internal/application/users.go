package application

import (
	"context"
	"fmt"

	"user-management-api/internal/domain/user"
)

// GetUser looks a user up by id, serving from the read-through cache when
// possible.
func (s *Service) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	uid := user.ID(id)

	if s.Cache != nil {
		var cached UserResponse
		if ok, err := s.Cache.Get(ctx, userCacheKey(uid), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	u, err := s.Repo.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("find by id: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	resp := NewUserResponse(u)
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, userCacheKey(uid), resp); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", id).Warn("cache set failed")
		}
	}
	return resp, nil
}

// ListUsers returns one page of users plus the total count, in the
// repository's id-descending order.
func (s *Service) ListUsers(ctx context.Context, query ListUsersQuery) ([]*UserResponse, int64, error) {
	users, total, err := s.Repo.List(ctx, query.Page, query.RowsPerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out, total, nil
}

// UpdateUser loads the aggregate, applies email and profile changes, and
// persists. Validation failures short-circuit before anything reaches storage.
func (s *Service) UpdateUser(ctx context.Context, id int64, cmd UpdateUserCommand) (*UserResponse, error) {
	uid := user.ID(id)

	u, err := s.Repo.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("find by id: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	newEmail, err := user.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	u.ChangeEmail(newEmail)

	if err := u.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.Age); err != nil {
		return nil, err
	}

	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.invalidateUser(ctx, uid)
	s.indexUser(ctx, u)

	return NewUserResponse(u), nil
}

// SearchUsers queries the search index. Without an index configured it returns
// an empty result rather than failing.
func (s *Service) SearchUsers(ctx context.Context, q string, size int) ([]*UserResponse, error) {
	if s.Search == nil {
		return []*UserResponse{}, nil
	}
	docs, err := s.Search.Search(ctx, q, size)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	out := make([]*UserResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, &UserResponse{
			ID:        d.ID,
			Email:     d.Email,
			FirstName: d.FirstName,
			LastName:  d.LastName,
			Age:       d.Age,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}
