package api

import (
	"net/http"

	"foodloop-be/internal/middleware"
	"foodloop-be/internal/restaurant"

	"github.com/google/uuid"
)

// RestaurantsHandler handles restaurant master-data endpoints.
type RestaurantsHandler struct {
	Restaurants restaurant.Service
}

type createRestaurantRequest struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Categories []string `json:"categories"`
}

type updateRestaurantRequest struct {
	Name       *string   `json:"name"`
	Address    *string   `json:"address"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Categories *[]string `json:"categories"`
}

// List handles GET /api/restaurants.
func (h *RestaurantsHandler) List(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.FindAll(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if restaurants == nil {
		restaurants = []restaurant.Restaurant{}
	}
	jsonResponse(w, http.StatusOK, restaurants)
}

// Create handles POST /api/restaurants.
func (h *RestaurantsHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	var req createRestaurantRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Address == "" {
		jsonError(w, http.StatusBadRequest, "name and address required")
		return
	}

	rest, err := h.Restaurants.Create(r.Context(), id.UserID, restaurant.CreateParams{
		Name:       req.Name,
		Address:    req.Address,
		Email:      req.Email,
		Phone:      req.Phone,
		Categories: req.Categories,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, rest)
}

// Get handles GET /api/restaurants/{id}.
func (h *RestaurantsHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	jsonResponse(w, http.StatusOK, rest)
}

// Mine handles GET /api/restaurants/mine.
func (h *RestaurantsHandler) Mine(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	restaurants, err := h.Restaurants.FindByOwner(r.Context(), id.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if restaurants == nil {
		restaurants = []restaurant.Restaurant{}
	}
	jsonResponse(w, http.StatusOK, restaurants)
}

// Update handles PUT /api/restaurants/{id}.
func (h *RestaurantsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	restID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	var req updateRestaurantRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rest, err := h.Restaurants.Update(r.Context(), restID, id.UserID, restaurant.UpdateParams{
		Name:       req.Name,
		Address:    req.Address,
		Email:      req.Email,
		Phone:      req.Phone,
		Categories: req.Categories,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, rest)
}

// Delete handles DELETE /api/restaurants/{id}.
func (h *RestaurantsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFrom(r.Context())

	restID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	if err := h.Restaurants.Delete(r.Context(), restID, id.UserID); err != nil {
		writeDomainError(w, err)
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}
