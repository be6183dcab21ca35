package item

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrForbidden       = errors.New("you can only manage your own items")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
)
