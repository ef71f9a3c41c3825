package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// ProposalAccepter defines the interface that the service must implement.
type ProposalAccepter interface {
	Accept(ctx context.Context, swapID, proposalID, actorID uuid.UUID) (*models.SwapDB, error)
}

// AcceptProposalRequest represents the JSON body for accepting a proposal
// swagger:model AcceptProposalRequest
type AcceptProposalRequest struct {
	// Proposal to accept
	// required: true
	ProposalID uuid.UUID `json:"proposal_id"`

	// Targeting link the proposal arrived through, if any
	TargetID *uuid.UUID `json:"target_id,omitempty"`

	// Swap the proposal was made against
	// required: true
	SwapID uuid.UUID `json:"swap_id"`
}

// AcceptProposalResponse represents a successful accept response
// swagger:model AcceptProposalResponse
type AcceptProposalResponse struct {
	// Whether the transition was applied
	// default: true
	Success bool `json:"success"`

	// The swap after the transition
	Swap models.SwapDB `json:"swap"`
}

// AcceptProposalErrorResponse represents an error response for accepting a proposal
// swagger:model AcceptProposalErrorResponse
type AcceptProposalErrorResponse struct {
	// Whether the transition was applied
	// default: false
	Success bool `json:"success"`

	// Error message
	Error string `json:"error"`
}

// NewAcceptProposalHandler returns an HTTP handler for accepting a proposal.
// Every other pending proposal on the swap is rejected in the same operation.
// @Summary Accept a proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param request body handlers.AcceptProposalRequest true "Accept request"
// @Success 200 {object} handlers.AcceptProposalResponse
// @Failure 403 {object} handlers.AcceptProposalErrorResponse "Not the owner"
// @Failure 409 {object} handlers.AcceptProposalErrorResponse "Swap not available"
// @Router /proposals/accept [post]
// @Security BearerAuth
func NewAcceptProposalHandler(svc ProposalAccepter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req AcceptProposalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AcceptProposalErrorResponse{Error: "Invalid request body"})
			return
		}

		swap, err := svc.Accept(r.Context(), req.SwapID, req.ProposalID, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to accept proposal", "swapID", req.SwapID, "proposalID", req.ProposalID, "actor", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(AcceptProposalErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AcceptProposalResponse{Success: true, Swap: *swap})
	}
}
