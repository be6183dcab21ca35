package order

import (
	"foodloop-be/internal/item"
	"foodloop-be/internal/user"
)

// Decision is the outcome of evaluating an order request against an item
// snapshot: the type the order gets and the price the requester pays.
type Decision struct {
	OrderType  OrderType
	TotalPrice float64
}

// Evaluate decides whether the requester may order the given quantity of the
// item, and at what price. It is a pure function of its inputs; first match
// wins:
//
//   - unavailable item        -> ErrItemUnavailable
//   - not enough stock        -> ErrInsufficientStock
//   - client + free item      -> ErrRoleNotEligible (clients cannot claim)
//   - client + priced item    -> PURCHASE at unit price x qty
//   - charity + free item     -> CLAIM at 0
//   - charity + priced item   -> PURCHASE at unit price x qty
//   - anything else           -> ErrRoleNotEligible
func Evaluate(role user.Role, snapshot item.Item, requestedQty int) (Decision, error) {
	if !snapshot.IsAvailable {
		return Decision{}, ErrItemUnavailable
	}

	if requestedQty > snapshot.Quantity {
		return Decision{}, ErrInsufficientStock
	}

	switch role {
	case user.RoleClient:
		if snapshot.IsFree {
			return Decision{}, ErrRoleNotEligible
		}
		return Decision{
			OrderType:  TypePurchase,
			TotalPrice: snapshot.UnitPrice() * float64(requestedQty),
		}, nil

	case user.RoleCharity:
		if snapshot.IsFree {
			return Decision{OrderType: TypeClaim, TotalPrice: 0}, nil
		}
		return Decision{
			OrderType:  TypePurchase,
			TotalPrice: snapshot.UnitPrice() * float64(requestedQty),
		}, nil

	default:
		return Decision{}, ErrRoleNotEligible
	}
}
