package order

import (
	"time"

	"github.com/google/uuid"
)

type OrderType string

const (
	TypePurchase OrderType = "PURCHASE"
	TypeClaim    OrderType = "CLAIM"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ValidStatus reports whether s is one of the four order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ItemID       uuid.UUID
	RestaurantID uuid.UUID
	OrderType    OrderType
	Quantity     int
	TotalPrice   float64
	Status       OrderStatus
	PickupTime   *time.Time
	Notes        string
	CreatedAt    time.Time
}

type CreateParams struct {
	ItemID     uuid.UUID
	Quantity   int
	PickupTime *time.Time
	Notes      string
}
