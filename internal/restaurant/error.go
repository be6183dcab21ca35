package restaurant

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrForbidden          = errors.New("you can only manage your own restaurant")
)
