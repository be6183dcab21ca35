package item

import (
	"context"
	"time"

	"foodloop-be/internal/logger"
	"foodloop-be/internal/restaurant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateParams struct {
	RestaurantID      uuid.UUID
	Name              string
	Description       string
	Category          string
	Quantity          int
	IsFree            bool
	Price             float64
	DiscountedPrice   *float64
	IsAvailable       *bool
	PickupStartTime   *time.Time
	PickupEndTime     *time.Time
	Photo             string
	LowStockThreshold *int
}

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (Item, error)
	FindAvailable(ctx context.Context) ([]Item, error)
	FindForSale(ctx context.Context) ([]Item, error)
	FindFree(ctx context.Context) ([]Item, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Item, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Item, error)
	FindOne(ctx context.Context, id uuid.UUID) (Item, error)
	Update(ctx context.Context, id, requesterID uuid.UUID, params UpdateParams) (Item, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}

type service struct {
	repo        Repository
	restaurants restaurant.Repository
}

func NewService(repo Repository, restaurants restaurant.Repository) Service {
	return &service{repo: repo, restaurants: restaurants}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (Item, error) {
	log := logger.FromCtx(ctx)

	if params.Quantity < 0 {
		return Item{}, ErrInvalidQuantity
	}

	rest, err := s.restaurants.FindByID(ctx, params.RestaurantID)
	if err != nil {
		return Item{}, err
	}
	if rest.OwnerID != ownerID {
		return Item{}, ErrForbidden
	}

	available := true
	if params.IsAvailable != nil {
		available = *params.IsAvailable
	}

	threshold := 5
	if params.LowStockThreshold != nil {
		threshold = *params.LowStockThreshold
	}

	i, err := s.repo.Create(ctx, Item{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		RestaurantID:      params.RestaurantID,
		Name:              params.Name,
		Description:       params.Description,
		Category:          params.Category,
		Quantity:          params.Quantity,
		IsFree:            params.IsFree,
		Price:             params.Price,
		DiscountedPrice:   params.DiscountedPrice,
		IsAvailable:       available,
		PickupStartTime:   params.PickupStartTime,
		PickupEndTime:     params.PickupEndTime,
		Photo:             params.Photo,
		LowStockThreshold: threshold,
	})
	if err != nil {
		log.Error("failed to create item", zap.Error(err))
		return Item{}, err
	}

	log.Info("item created",
		zap.String("item_id", i.ID.String()),
		zap.String("restaurant_id", i.RestaurantID.String()),
		zap.Bool("is_free", i.IsFree),
		zap.Int("quantity", i.Quantity),
	)
	return i, nil
}

func (s *service) FindAvailable(ctx context.Context) ([]Item, error) {
	return s.repo.FindAvailable(ctx)
}

func (s *service) FindForSale(ctx context.Context) ([]Item, error) {
	return s.repo.FindForSale(ctx)
}

func (s *service) FindFree(ctx context.Context) ([]Item, error) {
	return s.repo.FindFree(ctx)
}

func (s *service) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Item, error) {
	return s.repo.FindByRestaurant(ctx, restaurantID)
}

func (s *service) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Item, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *service) FindOne(ctx context.Context, id uuid.UUID) (Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id, requesterID uuid.UUID, params UpdateParams) (Item, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if i.OwnerID != requesterID {
		return Item{}, ErrForbidden
	}
	if params.Quantity != nil && *params.Quantity < 0 {
		return Item{}, ErrInvalidQuantity
	}
	return s.repo.Update(ctx, id, params)
}

// Delete removes an item. Orders referencing the item are left as they are;
// reads of the deleted item from those orders fail with ErrItemNotFound.
func (s *service) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if i.OwnerID != requesterID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
