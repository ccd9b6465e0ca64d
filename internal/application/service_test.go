package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-management-api/internal/domain/user"
)

// memRepo is an in-memory user.Repository used across the service tests.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*user.User

	saveErr error
	findErr error
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, users: map[int64]*user.User{}}
}

func (r *memRepo) FindByID(_ context.Context, id user.ID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id.Int64()]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *memRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email().Equals(email) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *memRepo) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if u.ID().IsZero() {
		u.SetID(user.ID(r.nextID))
		r.nextID++
	}
	r.users[u.ID().Int64()] = cloneUser(u)
	return nil
}

func (r *memRepo) ExistsWithEmail(ctx context.Context, email user.Email) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	return u != nil, err
}

func (r *memRepo) List(_ context.Context, page, pageSize int) ([]*user.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	out := []*user.User{}
	for i := offset; i < len(ids) && i < offset+pageSize; i++ {
		out = append(out, cloneUser(r.users[ids[i]]))
	}
	return out, int64(len(ids)), nil
}

func cloneUser(u *user.User) *user.User {
	return user.Reconstitute(u.ID(), u.Email(), u.Password(), u.Profile(), u.CreatedAt())
}

// stubTokens mints predictable tokens.
type stubTokens struct {
	err error
}

func (s *stubTokens) GenerateToken(_ context.Context, userID int64, email string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}

func newTestService(repo user.Repository) *Service {
	return NewService(repo, &stubTokens{}, nil, nil, nil, nil)
}

func registerJohn(t *testing.T, svc *Service) *UserResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), RegisterCommand{
		Email:     "john@x.com",
		Password:  "Secure123",
		FirstName: "John",
		LastName:  "Doe",
		Age:       30,
	})
	require.NoError(t, err)
	return resp
}

func TestRegister_Success(t *testing.T) {
	svc := newTestService(newMemRepo())

	resp := registerJohn(t, svc)
	assert.Equal(t, "john@x.com", resp.Email)
	assert.Equal(t, "John", resp.FirstName)
	assert.Equal(t, "Doe", resp.LastName)
	assert.Equal(t, 30, resp.Age)
	assert.NotZero(t, resp.ID, "save must assign an id onto the aggregate")
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc := newTestService(newMemRepo())

	resp, err := svc.Register(context.Background(), RegisterCommand{
		Email: "  JOHN@X.COM ", Password: "Secure123", FirstName: "John", LastName: "Doe", Age: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "john@x.com", resp.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(newMemRepo())
	registerJohn(t, svc)

	_, err := svc.Register(context.Background(), RegisterCommand{
		Email: "john@x.com", Password: "Other456Aa", FirstName: "Jane", LastName: "Doe", Age: 25,
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Contains(t, err.Error(), "john@x.com")
}

func TestRegister_DomainValidationSurfaces(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.Register(context.Background(), RegisterCommand{
		Email: "john@x.com", Password: "weak", FirstName: "John", LastName: "Doe", Age: 30,
	})
	assert.ErrorIs(t, err, user.ErrPasswordTooShort)

	_, err = svc.Register(context.Background(), RegisterCommand{
		Email: "not-an-email", Password: "Secure123", FirstName: "John", LastName: "Doe", Age: 30,
	})
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(newMemRepo())
	resp := registerJohn(t, svc)

	token, err := svc.Login(context.Background(), LoginCommand{Email: "john@x.com", Password: "Secure123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, fmt.Sprintf("token-%d-john@x.com", resp.ID), token.AccessToken)
}

func TestLogin_DoesNotLeakAccountExistence(t *testing.T) {
	svc := newTestService(newMemRepo())
	registerJohn(t, svc)

	_, wrongPassword := svc.Login(context.Background(), LoginCommand{Email: "john@x.com", Password: "wrong"})
	_, unknownEmail := svc.Login(context.Background(), LoginCommand{Email: "nonexistent@x.com", Password: "anything"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_TokenGenerationFailure(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	registerJohn(t, svc)

	svc.Tokens = &stubTokens{err: errors.New("signer down")}
	_, err := svc.Login(context.Background(), LoginCommand{Email: "john@x.com", Password: "Secure123"})
	assert.ErrorIs(t, err, ErrTokenGeneration)
}

func TestGetUser(t *testing.T) {
	svc := newTestService(newMemRepo())
	created := registerJohn(t, svc)

	got, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetUser(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateUser_SameSemanticsAsRegister(t *testing.T) {
	svc := newTestService(newMemRepo())
	registerJohn(t, svc)

	_, err := svc.CreateUser(context.Background(), CreateUserCommand{
		Email: "john@x.com", Password: "Secure123", FirstName: "John", LastName: "Doe", Age: 30,
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	resp, err := svc.CreateUser(context.Background(), CreateUserCommand{
		Email: "jane@x.com", Password: "Secure123", FirstName: "Jane", LastName: "Doe", Age: 28,
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", resp.Email)
}

func TestUpdateUser(t *testing.T) {
	svc := newTestService(newMemRepo())
	created := registerJohn(t, svc)

	updated, err := svc.UpdateUser(context.Background(), created.ID, UpdateUserCommand{
		Email: "john.doe@x.com", FirstName: "Johnny", LastName: "Doe", Age: 31,
	})
	require.NoError(t, err)
	assert.Equal(t, "john.doe@x.com", updated.Email)
	assert.Equal(t, "Johnny", updated.FirstName)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.UpdateUser(context.Background(), 123, UpdateUserCommand{
		Email: "a@b.com", FirstName: "A", LastName: "B", Age: 20,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_ValidationShortCircuitsBeforeSave(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	created := registerJohn(t, svc)

	// A save at this point would fail loudly; validation must stop first.
	repo.saveErr = errors.New("save must not be reached")

	_, err := svc.UpdateUser(context.Background(), created.ID, UpdateUserCommand{
		Email: "john@x.com", FirstName: "", LastName: "Doe", Age: 30,
	})
	assert.ErrorIs(t, err, user.ErrEmptyFirstName)

	_, err = svc.UpdateUser(context.Background(), created.ID, UpdateUserCommand{
		Email: "broken", FirstName: "John", LastName: "Doe", Age: 30,
	})
	assert.ErrorIs(t, err, user.ErrInvalidEmail)

	repo.saveErr = nil
	got, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got, "failed updates must never reach storage")
}

func TestListUsers_Pagination(t *testing.T) {
	svc := newTestService(newMemRepo())
	for i := 0; i < 15; i++ {
		_, err := svc.Register(context.Background(), RegisterCommand{
			Email:     fmt.Sprintf("user%d@x.com", i),
			Password:  "Secure123",
			FirstName: "User",
			LastName:  fmt.Sprintf("Number%d", i),
			Age:       20 + i,
		})
		require.NoError(t, err)
	}

	page1, total, err := svc.ListUsers(context.Background(), ListUsersQuery{Page: 1, RowsPerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	require.Len(t, page1, 10)
	for i := 1; i < len(page1); i++ {
		assert.Greater(t, page1[i-1].ID, page1[i].ID, "page must be ordered by id descending")
	}

	page2, total, err := svc.ListUsers(context.Background(), ListUsersQuery{Page: 2, RowsPerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, page2, 5)
	assert.Greater(t, page2[0].ID, page2[len(page2)-1].ID)
	assert.Less(t, page2[0].ID, page1[len(page1)-1].ID)
}

func TestRepositoryErrorsAreWrappedNotSwallowed(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	registerJohn(t, svc)

	repo.findErr = fmt.Errorf("%w: connection reset", user.ErrPersistence)

	_, err := svc.GetUser(context.Background(), 1)
	assert.ErrorIs(t, err, user.ErrPersistence)

	_, err = svc.Login(context.Background(), LoginCommand{Email: "john@x.com", Password: "Secure123"})
	assert.ErrorIs(t, err, user.ErrPersistence)
}
