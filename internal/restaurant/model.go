package restaurant

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Address    string
	Email      string
	Phone      string
	Categories []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UpdateParams whitelists the fields a restaurant owner may change.
// Nil means "leave unchanged".
type UpdateParams struct {
	Name       *string
	Address    *string
	Email      *string
	Phone      *string
	Categories *[]string
}
