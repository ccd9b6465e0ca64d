package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"user-management-api/internal/domain/user"
)

// UserRepository is the pgx implementation of the user.Repository port.
// The users table carries a unique index on email; that constraint, not the
// ExistsWithEmail pre-check, is what guarantees email uniqueness under
// concurrent registration.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ user.Repository = (*UserRepository)(nil)

type userRow struct {
	id           int64
	email        string
	passwordHash string
	firstName    string
	lastName     string
	age          int
	createdAt    time.Time
}

// toDomain reconstitutes the aggregate from a row. Stored values are
// re-parsed through the value objects; a row that no longer satisfies them
// is reported as an unexpected repository error.
func toDomain(row userRow) (*user.User, error) {
	email, err := user.NewEmail(row.email)
	if err != nil {
		return nil, fmt.Errorf("%w: stored email for user %d: %v", user.ErrUnexpected, row.id, err)
	}
	profile, err := user.NewProfile(row.firstName, row.lastName, row.age)
	if err != nil {
		return nil, fmt.Errorf("%w: stored profile for user %d: %v", user.ErrUnexpected, row.id, err)
	}
	return user.Reconstitute(
		user.ID(row.id),
		email,
		user.PasswordFromHash(row.passwordHash),
		profile,
		row.createdAt,
	), nil
}

const userColumns = `id, email, password_hash, first_name, last_name, age, created_at`

func (r *UserRepository) FindByID(ctx context.Context, id user.ID) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id.Int64())
	return r.scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email.String())
	return r.scanUser(row)
}

func (r *UserRepository) scanUser(row pgx.Row) (*user.User, error) {
	var ur userRow
	if err := row.Scan(&ur.id, &ur.email, &ur.passwordHash, &ur.firstName, &ur.lastName, &ur.age, &ur.createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", user.ErrPersistence, err)
	}
	return toDomain(ur)
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	if u.ID().IsZero() {
		return r.insert(ctx, u)
	}
	return r.update(ctx, u)
}

func (r *UserRepository) insert(ctx context.Context, u *user.User) error {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, age, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		u.Email().String(),
		u.Password().Hash(),
		u.Profile().FirstName(),
		u.Profile().LastName(),
		u.Profile().Age(),
		u.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("%w: %v", user.ErrPersistence, err)
	}
	u.SetID(user.ID(id))
	return nil
}

func (r *UserRepository) update(ctx context.Context, u *user.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, password_hash = $2, first_name = $3, last_name = $4, age = $5
		WHERE id = $6
	`,
		u.Email().String(),
		u.Password().Hash(),
		u.Profile().FirstName(),
		u.Profile().LastName(),
		u.Profile().Age(),
		u.ID().Int64(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", user.ErrPersistence, err)
	}
	if res.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ExistsWithEmail(ctx context.Context, email user.Email) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: %v", user.ErrPersistence, err)
	}
	return exists, nil
}

func (r *UserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", user.ErrPersistence, err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var ur userRow
		if err := rows.Scan(&ur.id, &ur.email, &ur.passwordHash, &ur.firstName, &ur.lastName, &ur.age, &ur.createdAt); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", user.ErrPersistence, err)
		}
		u, err := toDomain(ur)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", user.ErrPersistence, err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", user.ErrPersistence, err)
	}

	return users, total, nil
}
