package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
	"github.com/stayswap/stayswap/internal/services"
)

// ProposalSubmitter defines the interface that the service must implement.
type ProposalSubmitter interface {
	Submit(ctx context.Context, swapID, proposerID uuid.UUID, in services.NewProposalInput) (*models.ProposalDB, error)
}

// SubmitProposalRequest represents the JSON body for submitting a proposal
// swagger:model SubmitProposalRequest
type SubmitProposalRequest struct {
	// Proposal type: booking or cash
	// required: true
	// default: cash
	Type string `json:"type"`

	// Offered booking (booking proposals)
	OfferedBookingID *uuid.UUID `json:"offered_booking_id,omitempty"`

	// Cash amount (cash proposals)
	CashAmount *float64 `json:"cash_amount,omitempty"`

	// Cash currency (cash proposals)
	// default: EUR
	CashCurrency *string `json:"cash_currency,omitempty"`

	// Payment method reference (cash proposals)
	PaymentMethodID *string `json:"payment_method_id,omitempty"`

	// Whether the proposer agreed to escrow
	EscrowAgreement bool `json:"escrow_agreement"`

	// Message to the owner
	// required: true
	Message string `json:"message"`

	// Ordered free-text conditions
	Conditions []string `json:"conditions,omitempty"`
}

// SubmitProposalErrorResponse represents an error response for proposal submission
// swagger:model SubmitProposalErrorResponse
type SubmitProposalErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewSubmitProposalHandler returns an HTTP handler for submitting a proposal
// against a swap. Resubmission by the same proposer supersedes the previous
// pending proposal.
// @Summary Submit a proposal
// @Description Submit a booking-exchange or cash proposal against a swap. Validation rules apply in a fixed order and the first violated rule is reported.
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Swap ID"
// @Param request body handlers.SubmitProposalRequest true "Proposal"
// @Success 201 {object} models.ProposalDB "Proposal created"
// @Failure 400 {object} handlers.SubmitProposalErrorResponse "Validation failed"
// @Failure 409 {object} handlers.SubmitProposalErrorResponse "Swap not available"
// @Router /swaps/{id}/proposals [post]
// @Security BearerAuth
func NewSubmitProposalHandler(svc ProposalSubmitter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		swapID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitProposalErrorResponse{Error: "Invalid swap id"})
			return
		}

		var req SubmitProposalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitProposalErrorResponse{Error: "Invalid request body"})
			return
		}

		proposal, err := svc.Submit(r.Context(), swapID, claims.UserID, services.NewProposalInput{
			Type:             req.Type,
			OfferedBookingID: req.OfferedBookingID,
			CashAmount:       req.CashAmount,
			CashCurrency:     req.CashCurrency,
			PaymentMethodID:  req.PaymentMethodID,
			EscrowAgreement:  req.EscrowAgreement,
			Message:          req.Message,
			Conditions:       req.Conditions,
		})
		if err != nil {
			logger.Log.Errorw("failed to submit proposal", "swapID", swapID, "proposer", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(SubmitProposalErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(proposal)
	}
}
