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

// SwapCreator defines the interface that the service must implement.
type SwapCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in services.NewSwapInput) (*models.SwapDB, error)
}

// PaymentTypes selects how the owner is willing to be compensated
// swagger:model PaymentTypes
type PaymentTypes struct {
	// Accept another booking in exchange
	// default: true
	BookingExchange bool `json:"booking_exchange"`

	// Accept a cash offer
	// default: false
	CashPayment bool `json:"cash_payment"`

	// Minimum acceptable cash amount
	MinimumCashAmount *float64 `json:"minimum_cash_amount,omitempty"`

	// Preferred cash amount
	PreferredCashAmount *float64 `json:"preferred_cash_amount,omitempty"`
}

// AuctionSettings configures the auction acceptance strategy
// swagger:model AuctionSettings
type AuctionSettings struct {
	// Auction end date
	// required: true
	EndDate *time.Time `json:"end_date"`

	// Automatically select the highest cash proposal once ended
	AutoSelectHighest bool `json:"auto_select_highest"`

	// Hours past the end date after which the highest cash proposal wins
	AutoSelectAfterHours *int `json:"auto_select_after_hours,omitempty"`

	// Whether booking proposals are accepted
	// default: true
	AllowBookingProposals bool `json:"allow_booking_proposals"`

	// Whether cash proposals are accepted
	// default: true
	AllowCashProposals bool `json:"allow_cash_proposals"`

	// Minimum cash offer for the auction
	MinimumCashOffer *float64 `json:"minimum_cash_offer,omitempty"`
}

// CreateSwapRequest represents the JSON body for creating a swap listing
// swagger:model CreateSwapRequest
type CreateSwapRequest struct {
	// Source booking being offered
	// required: true
	SourceBookingID uuid.UUID `json:"source_booking_id"`

	// Listing title
	// required: true
	Title string `json:"title"`

	// Listing description
	Description string `json:"description"`

	// Payment type preference
	// required: true
	PaymentTypes PaymentTypes `json:"payment_types"`

	// Acceptance strategy: first_match or auction
	// required: true
	// default: first_match
	AcceptanceStrategy string `json:"acceptance_strategy"`

	// Auction settings, required when strategy is auction
	AuctionSettings *AuctionSettings `json:"auction_settings,omitempty"`

	// Listing expiration date
	// required: true
	ExpirationDate time.Time `json:"expiration_date"`
}

// CreateSwapErrorResponse represents an error response for swap creation
// swagger:model CreateSwapErrorResponse
type CreateSwapErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreateSwapHandler returns an HTTP handler for creating a swap listing.
// @Summary Create a swap
// @Description List a booking for exchange or cash offers. At least one payment type must be enabled; auctions must end at least a week before the booking date.
// @Tags swaps
// @Accept json
// @Produce json
// @Param request body handlers.CreateSwapRequest true "Swap"
// @Success 201 {object} models.SwapDB "Swap created"
// @Failure 400 {object} handlers.CreateSwapErrorResponse "Validation failed"
// @Failure 401 {object} handlers.CreateSwapErrorResponse "Unauthorized"
// @Router /swaps [post]
// @Security BearerAuth
func NewCreateSwapHandler(svc SwapCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req CreateSwapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSwapErrorResponse{Error: "Invalid request body"})
			return
		}

		in := services.NewSwapInput{
			BookingID:           req.SourceBookingID,
			Title:               req.Title,
			Description:         req.Description,
			BookingExchange:     req.PaymentTypes.BookingExchange,
			CashPayment:         req.PaymentTypes.CashPayment,
			MinimumCashAmount:   req.PaymentTypes.MinimumCashAmount,
			PreferredCashAmount: req.PaymentTypes.PreferredCashAmount,
			Strategy:            req.AcceptanceStrategy,
			ExpiresAt:           req.ExpirationDate,
		}
		if req.AuctionSettings != nil {
			in.AuctionEndDate = req.AuctionSettings.EndDate
			in.AutoSelectHighest = req.AuctionSettings.AutoSelectHighest
			in.AutoSelectAfterHours = req.AuctionSettings.AutoSelectAfterHours
			in.AllowBookingProposals = req.AuctionSettings.AllowBookingProposals
			in.AllowCashProposals = req.AuctionSettings.AllowCashProposals
			in.MinimumCashOffer = req.AuctionSettings.MinimumCashOffer
		}

		swap, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			logger.Log.Errorw("failed to create swap", "userID", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(CreateSwapErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(swap)
	}
}
