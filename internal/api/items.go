package api

import (
	"net/http"
	"time"

	"foodloop-be/internal/item"
	"foodloop-be/internal/middleware"

	"github.com/google/uuid"
)

// ItemsHandler handles the surplus-item catalog endpoints.
type ItemsHandler struct {
	Items item.Service
}

type createItemRequest struct {
	RestaurantID      string     `json:"restaurantId"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	Quantity          int        `json:"quantity"`
	IsFree            bool       `json:"isFree"`
	Price             float64    `json:"price"`
	DiscountedPrice   *float64   `json:"discountedPrice"`
	IsAvailable       *bool      `json:"isAvailable"`
	PickupStartTime   *time.Time `json:"pickupStartTime"`
	PickupEndTime     *time.Time `json:"pickupEndTime"`
	Photo             string     `json:"photo"`
	LowStockThreshold *int       `json:"lowStockThreshold"`
}

type updateItemRequest struct {
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	Category          *string    `json:"category"`
	Quantity          *int       `json:"quantity"`
	IsFree            *bool      `json:"isFree"`
	Price             *float64   `json:"price"`
	DiscountedPrice   *float64   `json:"discountedPrice"`
	IsAvailable       *bool      `json:"isAvailable"`
	PickupStartTime   *time.Time `json:"pickupStartTime"`
	PickupEndTime     *time.Time `json:"pickupEndTime"`
	Photo             *string    `json:"photo"`
	LowStockThreshold *int       `json:"lowStockThreshold"`
}

// List handles GET /api/items. Only available items with stock are returned.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.writeItems(w)(h.Items.FindAvailable(r.Context()))
}

// ListForSale handles GET /api/items/for-sale.
func (h *ItemsHandler) ListForSale(w http.ResponseWriter, r *http.Request) {
	h.writeItems(w)(h.Items.FindForSale(r.Context()))
}

// ListFree handles GET /api/items/free.
func (h *ItemsHandler) ListFree(w http.ResponseWriter, r *http.Request) {
	h.writeItems(w)(h.Items.FindFree(r.Context()))
}

// Mine handles GET /api/items/mine.
func (h *ItemsHandler) Mine(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())
	h.writeItems(w)(h.Items.FindByOwner(r.Context(), id.UserID))
}

// ListByRestaurant handles GET /api/restaurants/{id}/items.
func (h *ItemsHandler) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	restID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}
	h.writeItems(w)(h.Items.FindByRestaurant(r.Context(), restID))
}

func (h *ItemsHandler) writeItems(w http.ResponseWriter) func([]item.Item, error) {
	return func(items []item.Item, err error) {
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if items == nil {
			items = []item.Item{}
		}
		jsonResponse(w, http.StatusOK, items)
	}
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	restID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	i, err := h.Items.Create(r.Context(), id.UserID, item.CreateParams{
		RestaurantID:      restID,
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Quantity:          req.Quantity,
		IsFree:            req.IsFree,
		Price:             req.Price,
		DiscountedPrice:   req.DiscountedPrice,
		IsAvailable:       req.IsAvailable,
		PickupStartTime:   req.PickupStartTime,
		PickupEndTime:     req.PickupEndTime,
		Photo:             req.Photo,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, i)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	i, err := h.Items.FindOne(r.Context(), itemID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, i)
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	i, err := h.Items.Update(r.Context(), itemID, id.UserID, item.UpdateParams{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Quantity:          req.Quantity,
		IsFree:            req.IsFree,
		Price:             req.Price,
		DiscountedPrice:   req.DiscountedPrice,
		IsAvailable:       req.IsAvailable,
		PickupStartTime:   req.PickupStartTime,
		PickupEndTime:     req.PickupEndTime,
		Photo:             req.Photo,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, i)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.Items.Delete(r.Context(), itemID, id.UserID); err != nil {
		writeDomainError(w, err)
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}
