package item

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Description  string
	Category     string

	Quantity int
	Sold     int
	Donated  int

	IsFree          bool
	Price           float64
	DiscountedPrice *float64
	IsAvailable     bool

	PickupStartTime   *time.Time
	PickupEndTime     *time.Time
	Photo             string
	LowStockThreshold int

	LastUpdated time.Time
	CreatedAt   time.Time
}

// UnitPrice returns the effective per-unit price: the discounted price when
// it is present and greater than zero, otherwise the list price.
func (i Item) UnitPrice() float64 {
	if i.DiscountedPrice != nil && *i.DiscountedPrice > 0 {
		return *i.DiscountedPrice
	}
	return i.Price
}

// UpdateParams whitelists the fields an owner may change on an item.
// Nil means "leave unchanged". Sold and donated counters are deliberately
// absent: only order creation and cancellation move them.
type UpdateParams struct {
	Name              *string
	Description       *string
	Category          *string
	Quantity          *int
	IsFree            *bool
	Price             *float64
	DiscountedPrice   *float64
	IsAvailable       *bool
	PickupStartTime   *time.Time
	PickupEndTime     *time.Time
	Photo             *string
	LowStockThreshold *int
}
