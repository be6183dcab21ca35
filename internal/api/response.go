package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodloop-be/internal/item"
	"foodloop-be/internal/logger"
	"foodloop-be/internal/order"
	"foodloop-be/internal/restaurant"
	"foodloop-be/internal/user"

	"go.uber.org/zap"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logger.L().Error("failed to encode response", zap.Error(err))
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// writeDomainError maps domain sentinel errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrItemNotFound),
		errors.Is(err, order.ErrUserNotFound),
		errors.Is(err, item.ErrItemNotFound),
		errors.Is(err, restaurant.ErrRestaurantNotFound),
		errors.Is(err, user.ErrUserNotFound):
		jsonError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, order.ErrForbidden),
		errors.Is(err, order.ErrRoleNotEligible),
		errors.Is(err, item.ErrForbidden),
		errors.Is(err, restaurant.ErrForbidden):
		jsonError(w, http.StatusForbidden, err.Error())

	case errors.Is(err, order.ErrItemUnavailable),
		errors.Is(err, order.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrOrderNotPending),
		errors.Is(err, item.ErrInvalidQuantity),
		errors.Is(err, user.ErrInvalidRole):
		jsonError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, order.ErrConflict),
		errors.Is(err, user.ErrEmailExists):
		jsonError(w, http.StatusConflict, err.Error())

	case errors.Is(err, user.ErrInvalidCredentials):
		jsonError(w, http.StatusUnauthorized, err.Error())

	default:
		logger.L().Error("unhandled error", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal server error")
	}
}
