package order

import (
	"testing"

	"foodloop-be/internal/item"
	"foodloop-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(isFree, isAvailable bool, quantity int) item.Item {
	discount := 8.0
	return item.Item{
		Price:           10,
		DiscountedPrice: &discount,
		IsFree:          isFree,
		IsAvailable:     isAvailable,
		Quantity:        quantity,
	}
}

// Every role x free-flag x stock x availability combination must resolve to
// exactly one documented outcome.
func TestEvaluate_Totality(t *testing.T) {
	roles := []user.Role{user.RoleClient, user.RoleCharity, user.RoleRestaurant}

	for _, role := range roles {
		for _, isFree := range []bool{true, false} {
			for _, available := range []bool{true, false} {
				for _, quantity := range []int{5, 1} { // requested qty is 2: sufficient / insufficient
					snap := snapshot(isFree, available, quantity)
					dec, err := Evaluate(role, snap, 2)

					switch {
					case !available:
						assert.ErrorIs(t, err, ErrItemUnavailable)
					case quantity < 2:
						assert.ErrorIs(t, err, ErrInsufficientStock)
					case role == user.RoleRestaurant:
						assert.ErrorIs(t, err, ErrRoleNotEligible)
					case role == user.RoleClient && isFree:
						assert.ErrorIs(t, err, ErrRoleNotEligible)
					case role == user.RoleCharity && isFree:
						require.NoError(t, err)
						assert.Equal(t, TypeClaim, dec.OrderType)
						assert.Zero(t, dec.TotalPrice)
					default:
						require.NoError(t, err)
						assert.Equal(t, TypePurchase, dec.OrderType)
						assert.Equal(t, 16.0, dec.TotalPrice)
					}
				}
			}
		}
	}
}

func TestEvaluate_UnrecognizedRole(t *testing.T) {
	_, err := Evaluate(user.Role("ADMIN"), snapshot(false, true, 5), 1)
	assert.ErrorIs(t, err, ErrRoleNotEligible)
}

func TestEvaluate_ClientPurchase(t *testing.T) {
	// Discounted item, client buys 2: 8 x 2 = 16.
	dec, err := Evaluate(user.RoleClient, snapshot(false, true, 5), 2)
	require.NoError(t, err)
	assert.Equal(t, TypePurchase, dec.OrderType)
	assert.Equal(t, 16.0, dec.TotalPrice)
}

func TestEvaluate_CharityClaim(t *testing.T) {
	dec, err := Evaluate(user.RoleCharity, snapshot(true, true, 5), 2)
	require.NoError(t, err)
	assert.Equal(t, TypeClaim, dec.OrderType)
	assert.Zero(t, dec.TotalPrice)
}

func TestEvaluate_CharityPurchase(t *testing.T) {
	dec, err := Evaluate(user.RoleCharity, snapshot(false, true, 5), 3)
	require.NoError(t, err)
	assert.Equal(t, TypePurchase, dec.OrderType)
	assert.Equal(t, 24.0, dec.TotalPrice)
}

func TestEvaluate_ClientCannotClaim(t *testing.T) {
	_, err := Evaluate(user.RoleClient, snapshot(true, true, 5), 1)
	assert.ErrorIs(t, err, ErrRoleNotEligible)
}

func TestEvaluate_PriceFallback(t *testing.T) {
	t.Run("NoDiscount", func(t *testing.T) {
		snap := snapshot(false, true, 5)
		snap.DiscountedPrice = nil

		dec, err := Evaluate(user.RoleClient, snap, 2)
		require.NoError(t, err)
		assert.Equal(t, 20.0, dec.TotalPrice)
	})

	t.Run("ZeroDiscountUsesListPrice", func(t *testing.T) {
		zero := 0.0
		snap := snapshot(false, true, 5)
		snap.DiscountedPrice = &zero

		dec, err := Evaluate(user.RoleClient, snap, 2)
		require.NoError(t, err)
		assert.Equal(t, 20.0, dec.TotalPrice)
	})
}

func TestEvaluate_ExactStockBoundary(t *testing.T) {
	// Requesting exactly the available quantity succeeds; one more fails.
	snap := snapshot(false, true, 5)

	_, err := Evaluate(user.RoleClient, snap, 5)
	assert.NoError(t, err)

	_, err = Evaluate(user.RoleClient, snap, 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}
