package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/models"
)

// BookingGetter defines the interface that the service must implement.
type BookingGetter interface {
	Get(ctx context.Context, bookingID uuid.UUID) (*models.BookingDB, error)
}

// GetBookingErrorResponse represents an error response for fetching a booking
// swagger:model GetBookingErrorResponse
type GetBookingErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewGetBookingHandler returns an HTTP handler for fetching a single booking.
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} models.BookingDB
// @Failure 404 {object} handlers.GetBookingErrorResponse "Booking not found"
// @Router /bookings/{id} [get]
// @Security BearerAuth
func NewGetBookingHandler(svc BookingGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := claimsFromRequest(w, r, tokener); !ok {
			return
		}

		bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetBookingErrorResponse{Error: "Invalid booking id"})
			return
		}

		booking, err := svc.Get(r.Context(), bookingID)
		if err != nil {
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(GetBookingErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(booking)
	}
}
