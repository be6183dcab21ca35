package restaurant

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, r Restaurant) (Restaurant, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(Restaurant), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Restaurant), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Restaurant), args.Error(1)
}

func (m *MockRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Restaurant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Restaurant), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Restaurant, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(Restaurant), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	ownerID := uuid.New()
	repo.On("Create", ctx, mock.MatchedBy(func(r Restaurant) bool {
		return r.OwnerID == ownerID && r.Name == "Le Gourmet" && r.ID != uuid.Nil
	})).Return(Restaurant{ID: uuid.New(), OwnerID: ownerID, Name: "Le Gourmet"}, nil)

	rest, err := svc.Create(ctx, ownerID, CreateParams{
		Name:       "Le Gourmet",
		Address:    "12 rue des Lilas",
		Email:      "contact@gourmet.fr",
		Phone:      "0123456789",
		Categories: []string{"Patisserie", "Plats"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Le Gourmet", rest.Name)
	repo.AssertExpectations(t)
}

func TestService_Update_OwnershipCheck(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	newName := "Renamed"

	t.Run("OwnerCanUpdate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByID", ctx, id).Return(Restaurant{ID: id, OwnerID: ownerID}, nil)
		repo.On("Update", ctx, id, UpdateParams{Name: &newName}).
			Return(Restaurant{ID: id, OwnerID: ownerID, Name: newName}, nil)

		rest, err := svc.Update(ctx, id, ownerID, UpdateParams{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, newName, rest.Name)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByID", ctx, id).Return(Restaurant{ID: id, OwnerID: ownerID}, nil)

		_, err := svc.Update(ctx, id, strangerID, UpdateParams{Name: &newName})
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByID", ctx, id).Return(Restaurant{}, ErrRestaurantNotFound)

		_, err := svc.Update(ctx, id, ownerID, UpdateParams{Name: &newName})
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}

func TestService_Delete_OwnershipCheck(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	ownerID := uuid.New()

	t.Run("OwnerCanDelete", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByID", ctx, id).Return(Restaurant{ID: id, OwnerID: ownerID}, nil)
		repo.On("Delete", ctx, id).Return(nil)

		assert.NoError(t, svc.Delete(ctx, id, ownerID))
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByID", ctx, id).Return(Restaurant{ID: id, OwnerID: ownerID}, nil)

		err := svc.Delete(ctx, id, uuid.New())
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Delete")
	})
}
