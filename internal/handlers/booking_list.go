package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// BookingLister defines the interface that the service must implement.
type BookingLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.BookingDB, error)
}

// ListBookingsResponse represents the booking list payload
// swagger:model ListBookingsResponse
type ListBookingsResponse struct {
	Bookings []models.BookingDB `json:"bookings"`
}

// ListBookingsErrorResponse represents an error response for listing bookings
// swagger:model ListBookingsErrorResponse
type ListBookingsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListBookingsHandler returns an HTTP handler for the caller's bookings.
// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} handlers.ListBookingsResponse
// @Failure 401 {object} handlers.ListBookingsErrorResponse "Unauthorized"
// @Router /bookings [get]
// @Security BearerAuth
func NewListBookingsHandler(svc BookingLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		bookings, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list bookings", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListBookingsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListBookingsResponse{Bookings: bookings})
	}
}
