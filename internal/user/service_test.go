package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u User) (User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Signup(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	params := SignupParams{
		FirstName: "Amel",
		LastName:  "B",
		Email:     "amel@example.com",
		Password:  "s3cret",
		Role:      RoleClient,
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(u User) bool {
			return u.Email == params.Email &&
				u.Role == RoleClient &&
				CheckPasswordHash("s3cret", u.Password)
		})).Return(User{ID: uuid.New(), Email: params.Email, Role: RoleClient}, nil)

		token, u, err := svc.Signup(ctx, params)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, params.Email, u.Email)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		bad := params
		bad.Role = Role("ADMIN")

		_, _, err := svc.Signup(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidRole)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.Anything).
			Return(User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, _, err := svc.Signup(ctx, params)
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	stored := User{
		ID:       uuid.New(),
		Email:    "amel@example.com",
		Password: hash,
		Role:     RoleCharity,
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)

		token, u, err := svc.Login(ctx, stored.Email, "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, RoleCharity, u.Role)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "nope@example.com").Return(User{}, ErrUserNotFound)

		_, _, err := svc.Login(ctx, "nope@example.com", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)

		_, _, err := svc.Login(ctx, stored.Email, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(User{ID: id, Role: RoleRestaurant}, nil)

	u, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, RoleRestaurant, u.Role)
}
