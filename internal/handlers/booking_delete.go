package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
)

// BookingRemover defines the interface that the service must implement.
type BookingRemover interface {
	Remove(ctx context.Context, userID, bookingID uuid.UUID) error
}

// RemoveBookingErrorResponse represents an error response for removing a booking
// swagger:model RemoveBookingErrorResponse
type RemoveBookingErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewRemoveBookingHandler returns an HTTP handler for withdrawing an available
// booking from the marketplace.
// @Summary Remove a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204 "Booking removed"
// @Failure 403 {object} handlers.RemoveBookingErrorResponse "Not the owner"
// @Failure 404 {object} handlers.RemoveBookingErrorResponse "Booking not found"
// @Failure 409 {object} handlers.RemoveBookingErrorResponse "Booking not available"
// @Router /bookings/{id} [delete]
// @Security BearerAuth
func NewRemoveBookingHandler(svc BookingRemover, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RemoveBookingErrorResponse{Error: "Invalid booking id"})
			return
		}

		if err := svc.Remove(r.Context(), claims.UserID, bookingID); err != nil {
			logger.Log.Errorw("failed to remove booking", "bookingID", bookingID, "actor", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(RemoveBookingErrorResponse{Error: err.Error()})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
