package api

import (
	"net/http"
	"time"

	"foodloop-be/internal/middleware"
	"foodloop-be/internal/order"
	"foodloop-be/internal/restaurant"

	"github.com/google/uuid"
)

// OrdersHandler handles order placement, cancellation and queries.
type OrdersHandler struct {
	Orders      order.Service
	Restaurants restaurant.Service
}

type createOrderRequest struct {
	ItemID     string     `json:"itemId"`
	Quantity   int        `json:"quantity"`
	PickupTime *time.Time `json:"pickupTime"`
	Notes      string     `json:"notes"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	o, err := h.Orders.Create(r.Context(), id.UserID, order.CreateParams{
		ItemID:     itemID,
		Quantity:   req.Quantity,
		PickupTime: req.PickupTime,
		Notes:      req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, o)
}

// Get handles GET /api/orders/{id}.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := h.Orders.FindOne(r.Context(), orderID, id.UserID, id.Role)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, o)
}

// Mine handles GET /api/orders/mine: orders the requester placed, newest first.
func (h *OrdersHandler) Mine(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())
	h.writeOrders(w)(h.Orders.FindByUser(r.Context(), id.UserID))
}

// ForMyItems handles GET /api/orders/for-my-items: orders placed against any
// item the requester owns, across all their restaurants.
func (h *OrdersHandler) ForMyItems(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())
	h.writeOrders(w)(h.Orders.FindByOwner(r.Context(), id.UserID))
}

// ListByRestaurant handles GET /api/restaurants/{id}/orders. Only the
// restaurant's owner may list its orders.
func (h *OrdersHandler) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	restID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	rest, err := h.Restaurants.FindOne(r.Context(), restID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if rest.OwnerID != id.UserID {
		writeDomainError(w, restaurant.ErrForbidden)
		return
	}

	h.writeOrders(w)(h.Orders.FindByRestaurant(r.Context(), restID))
}

// UpdateStatus handles PATCH /api/orders/{id}/status.
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.Orders.UpdateStatus(r.Context(), orderID, order.OrderStatus(req.Status), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, o)
}

// Cancel handles POST /api/orders/{id}/cancel.
func (h *OrdersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := h.Orders.Cancel(r.Context(), orderID, id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, o)
}

func (h *OrdersHandler) writeOrders(w http.ResponseWriter) func([]order.Order, error) {
	return func(orders []order.Order, err error) {
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if orders == nil {
			orders = []order.Order{}
		}
		jsonResponse(w, http.StatusOK, orders)
	}
}
