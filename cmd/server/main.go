package main

import (
	"database/sql"
	"net/http"

	"foodloop-be/internal/api"
	"foodloop-be/internal/config"
	"foodloop-be/internal/db"
	"foodloop-be/internal/item"
	"foodloop-be/internal/logger"
	"foodloop-be/internal/order"
	"foodloop-be/internal/restaurant"
	"foodloop-be/internal/user"

	"go.uber.org/zap"
)

// Seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	handler := newServer(database)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, handler)
}

// newServer wires repositories, services and the HTTP router.
func newServer(database *sql.DB) http.Handler {
	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	restaurantRepo := restaurant.NewRepository(database)
	restaurantSvc := restaurant.NewService(restaurantRepo)

	itemRepo := item.NewRepository(database)
	itemSvc := item.NewService(itemRepo, restaurantRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, itemRepo, userRepo)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("/api/", api.NewRouter(api.Services{
		Users:       userSvc,
		Restaurants: restaurantSvc,
		Items:       itemSvc,
		Orders:      orderSvc,
	}))
	return mux
}
