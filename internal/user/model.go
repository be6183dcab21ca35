package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleCharity    Role = "CHARITY"
	RoleRestaurant Role = "RESTAURANT"
)

// ValidRole reports whether r is one of the three marketplace roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleCharity, RoleRestaurant:
		return true
	}
	return false
}

type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
}
