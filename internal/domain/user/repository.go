package user

import "context"

// Repository is the persistence port for the User aggregate. Implementations
// live in infrastructure; the domain and application layers depend only on
// this interface.
type Repository interface {
	// FindByID returns the user or (nil, nil) when absent.
	FindByID(ctx context.Context, id ID) (*User, error)

	// FindByEmail returns the user or (nil, nil) when absent.
	FindByEmail(ctx context.Context, email Email) (*User, error)

	// Save inserts when the aggregate is transient (assigning its ID as an
	// observable side effect) and updates otherwise.
	Save(ctx context.Context, u *User) error

	// ExistsWithEmail reports whether a user with the normalized email exists.
	// This is a best-effort pre-check; the storage adapter's unique constraint
	// is what ultimately guarantees no two committed users share an email.
	ExistsWithEmail(ctx context.Context, email Email) (bool, error)

	// List returns one 1-based page of users ordered by id descending, plus
	// the total count across all pages.
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)
}
