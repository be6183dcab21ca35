package order

import (
	"context"
	"errors"
	"time"

	"foodloop-be/internal/item"
	"foodloop-be/internal/logger"
	"foodloop-be/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxReserveAttempts bounds the retry loop around the stock reservation so a
// contended item surfaces ErrConflict instead of spinning.
const maxReserveAttempts = 3

type Service interface {
	Create(ctx context.Context, requesterID uuid.UUID, params CreateParams) (Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status OrderStatus, requesterID uuid.UUID) (Order, error)
	Cancel(ctx context.Context, orderID, requesterID uuid.UUID) (Order, error)
	FindOne(ctx context.Context, orderID, requesterID uuid.UUID, role user.Role) (Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Order, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Order, error)
}

type service struct {
	repo  Repository
	items item.Repository
	users user.Repository
}

func NewService(repo Repository, items item.Repository, users user.Repository) Service {
	return &service{repo: repo, items: items, users: users}
}

// Create places a purchase or claim. The reservation and the order insert are
// one transaction; on a lost stock race the item snapshot is reloaded and the
// policy re-evaluated before retrying.
func (s *service) Create(ctx context.Context, requesterID uuid.UUID, params CreateParams) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("user_id", requesterID.String()),
		zap.String("item_id", params.ItemID.String()),
		zap.Int("quantity", params.Quantity),
	)

	if params.Quantity < 1 {
		return Order{}, ErrInvalidQuantity
	}

	u, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return Order{}, ErrUserNotFound
		}
		return Order{}, err
	}

	for attempt := 1; attempt <= maxReserveAttempts; attempt++ {
		snapshot, err := s.items.FindByID(ctx, params.ItemID)
		if err != nil {
			if errors.Is(err, item.ErrItemNotFound) {
				return Order{}, ErrItemNotFound
			}
			return Order{}, err
		}

		decision, err := Evaluate(u.Role, snapshot, params.Quantity)
		if err != nil {
			log.Info("order rejected by policy",
				zap.String("role", string(u.Role)),
				zap.Error(err),
			)
			return Order{}, err
		}

		o := Order{
			ID:           uuid.New(),
			UserID:       requesterID,
			ItemID:       snapshot.ID,
			RestaurantID: snapshot.RestaurantID,
			OrderType:    decision.OrderType,
			Quantity:     params.Quantity,
			TotalPrice:   decision.TotalPrice,
			Status:       StatusPending,
			PickupTime:   params.PickupTime,
			Notes:        params.Notes,
			CreatedAt:    time.Now(),
		}

		err = s.repo.CreateOrderTx(ctx, o)
		if errors.Is(err, ErrConflict) {
			log.Warn("reservation conflict, retrying", zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return Order{}, err
		}

		log.Info("order created",
			zap.String("order_id", o.ID.String()),
			zap.String("order_type", string(o.OrderType)),
			zap.Float64("total_price", o.TotalPrice),
		)
		return o, nil
	}

	return Order{}, ErrConflict
}

// UpdateStatus lets the item's owner set any status from any prior status.
// There is deliberately no transition guard beyond the ownership check.
func (s *service) UpdateStatus(ctx context.Context, orderID uuid.UUID, status OrderStatus, requesterID uuid.UUID) (Order, error) {
	if !ValidStatus(status) {
		return Order{}, ErrInvalidStatus
	}

	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}

	owned, err := s.ownsItem(ctx, o.ItemID, requesterID)
	if err != nil {
		return Order{}, err
	}
	if !owned {
		return Order{}, ErrForbidden
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return Order{}, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(status)),
	)
	return updated, nil
}

// Cancel reverses a pending order placed by the requester. Cancelling is not
// idempotent: a second call fails ErrOrderNotPending and touches no counters.
func (s *service) Cancel(ctx context.Context, orderID, requesterID uuid.UUID) (Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}

	if o.UserID != requesterID {
		return Order{}, ErrForbidden
	}

	if o.Status != StatusPending {
		return Order{}, ErrOrderNotPending
	}

	if err := s.repo.CancelOrderTx(ctx, o); err != nil {
		return Order{}, err
	}

	o.Status = StatusCancelled

	logger.FromCtx(ctx).Info("order cancelled",
		zap.String("order_id", o.ID.String()),
		zap.String("item_id", o.ItemID.String()),
		zap.Int("quantity", o.Quantity),
	)
	return o, nil
}

// FindOne enforces viewing rights: a restaurant user may view orders whose
// item it owns, everyone else only their own orders.
func (s *service) FindOne(ctx context.Context, orderID, requesterID uuid.UUID, role user.Role) (Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}

	if role == user.RoleRestaurant {
		owned, err := s.ownsItem(ctx, o.ItemID, requesterID)
		if err != nil {
			return Order{}, err
		}
		if !owned {
			return Order{}, ErrForbidden
		}
		return o, nil
	}

	if o.UserID != requesterID {
		return Order{}, ErrForbidden
	}
	return o, nil
}

func (s *service) FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *service) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Order, error) {
	return s.repo.FindByRestaurant(ctx, restaurantID)
}

func (s *service) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Order, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *service) ownsItem(ctx context.Context, itemID, requesterID uuid.UUID) (bool, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, item.ErrItemNotFound) {
			return false, ErrItemNotFound
		}
		return false, err
	}
	return it.OwnerID == requesterID, nil
}
