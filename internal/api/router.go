package api

import (
	"net/http"

	"foodloop-be/internal/item"
	"foodloop-be/internal/middleware"
	"foodloop-be/internal/order"
	"foodloop-be/internal/restaurant"
	"foodloop-be/internal/user"
)

// Services bundles the domain services the router wires handlers to.
type Services struct {
	Users       user.Service
	Restaurants restaurant.Service
	Items       item.Service
	Orders      order.Service
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(svc Services) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Users: svc.Users}
	restaurantsHandler := &RestaurantsHandler{Restaurants: svc.Restaurants}
	itemsHandler := &ItemsHandler{Items: svc.Items}
	ordersHandler := &OrdersHandler{Orders: svc.Orders, Restaurants: svc.Restaurants}

	requireRestaurant := middleware.RequireRole(user.RoleRestaurant)
	requireOrderer := middleware.RequireRole(user.RoleClient, user.RoleCharity)
	requireAuth := middleware.RequireAuth

	// Public: signup and login.
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Restaurants: read public, write restricted to restaurant accounts.
	mux.HandleFunc("GET /api/restaurants", restaurantsHandler.List)
	mux.Handle("POST /api/restaurants", requireRestaurant(http.HandlerFunc(restaurantsHandler.Create)))
	mux.Handle("GET /api/restaurants/mine", requireRestaurant(http.HandlerFunc(restaurantsHandler.Mine)))
	mux.HandleFunc("GET /api/restaurants/{id}", restaurantsHandler.Get)
	mux.Handle("PUT /api/restaurants/{id}", requireRestaurant(http.HandlerFunc(restaurantsHandler.Update)))
	mux.Handle("DELETE /api/restaurants/{id}", requireRestaurant(http.HandlerFunc(restaurantsHandler.Delete)))

	// Items: browsing is public, mutations belong to the owning restaurant.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/for-sale", itemsHandler.ListForSale)
	mux.HandleFunc("GET /api/items/free", itemsHandler.ListFree)
	mux.Handle("GET /api/items/mine", requireRestaurant(http.HandlerFunc(itemsHandler.Mine)))
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.Handle("POST /api/items", requireRestaurant(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("PUT /api/items/{id}", requireRestaurant(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", requireRestaurant(http.HandlerFunc(itemsHandler.Delete)))
	mux.HandleFunc("GET /api/restaurants/{id}/items", itemsHandler.ListByRestaurant)

	// Orders: clients and charities place them, restaurants work them.
	mux.Handle("POST /api/orders", requireOrderer(http.HandlerFunc(ordersHandler.Create)))
	mux.Handle("GET /api/orders/mine", requireAuth(http.HandlerFunc(ordersHandler.Mine)))
	mux.Handle("GET /api/orders/for-my-items", requireRestaurant(http.HandlerFunc(ordersHandler.ForMyItems)))
	mux.Handle("GET /api/orders/{id}", requireAuth(http.HandlerFunc(ordersHandler.Get)))
	mux.Handle("PATCH /api/orders/{id}/status", requireRestaurant(http.HandlerFunc(ordersHandler.UpdateStatus)))
	mux.Handle("POST /api/orders/{id}/cancel", requireOrderer(http.HandlerFunc(ordersHandler.Cancel)))
	mux.Handle("GET /api/restaurants/{id}/orders", requireRestaurant(http.HandlerFunc(ordersHandler.ListByRestaurant)))

	// Outer chain. Auth runs before the limiter so authenticated callers get
	// identity-keyed buckets instead of sharing an IP bucket.
	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.AuthMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)
	return handler
}
