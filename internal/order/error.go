package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrForbidden         = errors.New("forbidden")
	ErrRoleNotEligible   = errors.New("role is not eligible to place this order")
	ErrItemUnavailable   = errors.New("item is not available")
	ErrInsufficientStock = errors.New("insufficient quantity available")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrOrderNotPending   = errors.New("only pending orders can be cancelled")
	ErrConflict          = errors.New("lost reservation race, please retry")
)
