package item

import (
	"context"
	"testing"

	"foodloop-be/internal/restaurant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, i Item) (Item, error) {
	args := m.Called(ctx, i)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) FindAvailable(ctx context.Context) ([]Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) FindForSale(ctx context.Context) ([]Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) FindFree(ctx context.Context) ([]Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Item, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Item, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Item, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRestaurantRepo struct {
	mock.Mock
}

func (m *MockRestaurantRepo) Create(ctx context.Context, r restaurant.Restaurant) (restaurant.Restaurant, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) FindAll(ctx context.Context) ([]restaurant.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) FindByID(ctx context.Context, id uuid.UUID) (restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]restaurant.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) Update(ctx context.Context, id uuid.UUID, params restaurant.UpdateParams) (restaurant.Restaurant, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestUnitPrice(t *testing.T) {
	discount := 8.0
	zero := 0.0

	tests := []struct {
		name string
		item Item
		want float64
	}{
		{"NoDiscount", Item{Price: 10}, 10},
		{"WithDiscount", Item{Price: 10, DiscountedPrice: &discount}, 8},
		{"ZeroDiscountFallsBack", Item{Price: 10, DiscountedPrice: &zero}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.UnitPrice())
		})
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	restID := uuid.New()

	params := CreateParams{
		RestaurantID: restID,
		Name:         "Croissants du jour",
		Category:     "plat",
		Quantity:     10,
		Price:        10,
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		restRepo := new(MockRestaurantRepo)
		svc := NewService(repo, restRepo)

		restRepo.On("FindByID", ctx, restID).
			Return(restaurant.Restaurant{ID: restID, OwnerID: ownerID}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(i Item) bool {
			return i.OwnerID == ownerID && i.IsAvailable && i.LowStockThreshold == 5
		})).Return(Item{ID: uuid.New(), OwnerID: ownerID, Quantity: 10}, nil)

		i, err := svc.Create(ctx, ownerID, params)
		require.NoError(t, err)
		assert.Equal(t, 10, i.Quantity)
	})

	t.Run("RestaurantNotOwned", func(t *testing.T) {
		repo := new(MockRepository)
		restRepo := new(MockRestaurantRepo)
		svc := NewService(repo, restRepo)

		restRepo.On("FindByID", ctx, restID).
			Return(restaurant.Restaurant{ID: restID, OwnerID: uuid.New()}, nil)

		_, err := svc.Create(ctx, ownerID, params)
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		restRepo := new(MockRestaurantRepo)
		svc := NewService(repo, restRepo)

		bad := params
		bad.Quantity = -1

		_, err := svc.Create(ctx, ownerID, bad)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	itemID := uuid.New()

	t.Run("OwnerCanUpdate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockRestaurantRepo))

		newName := "Invendus du soir"
		repo.On("FindByID", ctx, itemID).Return(Item{ID: itemID, OwnerID: ownerID}, nil)
		repo.On("Update", ctx, itemID, UpdateParams{Name: &newName}).
			Return(Item{ID: itemID, OwnerID: ownerID, Name: newName}, nil)

		i, err := svc.Update(ctx, itemID, ownerID, UpdateParams{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, newName, i.Name)
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockRestaurantRepo))

		repo.On("FindByID", ctx, itemID).Return(Item{ID: itemID, OwnerID: ownerID}, nil)

		newName := "x"
		_, err := svc.Update(ctx, itemID, uuid.New(), UpdateParams{Name: &newName})
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("NegativeQuantityRejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockRestaurantRepo))

		repo.On("FindByID", ctx, itemID).Return(Item{ID: itemID, OwnerID: ownerID}, nil)

		q := -3
		_, err := svc.Update(ctx, itemID, ownerID, UpdateParams{Quantity: &q})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	itemID := uuid.New()

	t.Run("OwnerCanDelete", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockRestaurantRepo))

		repo.On("FindByID", ctx, itemID).Return(Item{ID: itemID, OwnerID: ownerID}, nil)
		repo.On("Delete", ctx, itemID).Return(nil)

		assert.NoError(t, svc.Delete(ctx, itemID, ownerID))
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockRestaurantRepo))

		repo.On("FindByID", ctx, itemID).Return(Item{ID: itemID, OwnerID: ownerID}, nil)

		err := svc.Delete(ctx, itemID, uuid.New())
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockRestaurantRepo))

		repo.On("FindByID", ctx, itemID).Return(Item{}, ErrItemNotFound)

		err := svc.Delete(ctx, itemID, ownerID)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}
