package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
	"github.com/stayswap/stayswap/internal/services"
)

// BookingCreator defines the interface that the service must implement.
type BookingCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in services.NewBookingInput) (*models.BookingDB, error)
}

// CreateBookingRequest represents the JSON body for listing a booking
// swagger:model CreateBookingRequest
type CreateBookingRequest struct {
	// Title
	// required: true
	// default: Two nights at the Grand Hotel
	Title string `json:"title"`

	// Description
	Description string `json:"description"`

	// Booking type
	// required: true
	// default: hotel
	Type string `json:"type"`

	// City
	// default: Lisbon
	City string `json:"city"`

	// Country
	// default: Portugal
	Country string `json:"country"`

	// Check-in date (stay bookings)
	CheckIn *time.Time `json:"check_in,omitempty"`

	// Check-out date (stay bookings)
	CheckOut *time.Time `json:"check_out,omitempty"`

	// Event date (event bookings)
	EventDate *time.Time `json:"event_date,omitempty"`

	// Price originally paid
	OriginalPrice float64 `json:"original_price"`

	// Value assigned for swapping
	SwapValue float64 `json:"swap_value"`

	// Currency
	// default: EUR
	Currency string `json:"currency"`

	// Capacity
	// default: 2
	Capacity int `json:"capacity"`

	// Amenities
	Amenities []string `json:"amenities"`
}

// CreateBookingErrorResponse represents an error response for booking creation
// swagger:model CreateBookingErrorResponse
type CreateBookingErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreateBookingHandler returns an HTTP handler for listing a new booking.
// @Summary List a booking
// @Description Create a booking listing owned by the authenticated user.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body handlers.CreateBookingRequest true "Booking"
// @Success 201 {object} models.BookingDB "Booking created"
// @Failure 400 {object} handlers.CreateBookingErrorResponse "Validation failed"
// @Failure 401 {object} handlers.CreateBookingErrorResponse "Unauthorized"
// @Router /bookings [post]
// @Security BearerAuth
func NewCreateBookingHandler(svc BookingCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBookingErrorResponse{Error: "Invalid request body"})
			return
		}

		booking, err := svc.Create(r.Context(), claims.UserID, services.NewBookingInput{
			Title:         req.Title,
			Description:   req.Description,
			Type:          req.Type,
			City:          req.City,
			Country:       req.Country,
			CheckIn:       req.CheckIn,
			CheckOut:      req.CheckOut,
			EventDate:     req.EventDate,
			OriginalPrice: req.OriginalPrice,
			SwapValue:     req.SwapValue,
			Currency:      req.Currency,
			Capacity:      req.Capacity,
			Amenities:     req.Amenities,
		})
		if err != nil {
			logger.Log.Errorw("failed to create booking", "userID", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(CreateBookingErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(booking)
	}
}
