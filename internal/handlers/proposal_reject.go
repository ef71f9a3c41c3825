package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// ProposalRejecter defines the interface that the service must implement.
type ProposalRejecter interface {
	Reject(ctx context.Context, swapID, proposalID, actorID uuid.UUID, reason string) (*models.ProposalDB, error)
}

// RejectProposalRequest represents the JSON body for rejecting a proposal
// swagger:model RejectProposalRequest
type RejectProposalRequest struct {
	// Proposal to reject
	// required: true
	ProposalID uuid.UUID `json:"proposal_id"`

	// Targeting link the proposal arrived through, if any
	TargetID *uuid.UUID `json:"target_id,omitempty"`

	// Swap the proposal was made against
	// required: true
	SwapID uuid.UUID `json:"swap_id"`

	// Reason shown to the proposer
	Reason string `json:"reason"`
}

// RejectProposalResponse represents a successful reject response
// swagger:model RejectProposalResponse
type RejectProposalResponse struct {
	// Whether the transition was applied
	// default: true
	Success bool `json:"success"`

	// The proposal after the transition
	Proposal models.ProposalDB `json:"proposal"`
}

// RejectProposalErrorResponse represents an error response for rejecting a proposal
// swagger:model RejectProposalErrorResponse
type RejectProposalErrorResponse struct {
	// Whether the transition was applied
	// default: false
	Success bool `json:"success"`

	// Error message
	Error string `json:"error"`
}

// NewRejectProposalHandler returns an HTTP handler for rejecting a single
// proposal. The swap stays pending and other proposals are untouched.
// @Summary Reject a proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param request body handlers.RejectProposalRequest true "Reject request"
// @Success 200 {object} handlers.RejectProposalResponse
// @Failure 403 {object} handlers.RejectProposalErrorResponse "Not the owner"
// @Failure 409 {object} handlers.RejectProposalErrorResponse "Proposal not pending"
// @Router /proposals/reject [post]
// @Security BearerAuth
func NewRejectProposalHandler(svc ProposalRejecter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req RejectProposalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RejectProposalErrorResponse{Error: "Invalid request body"})
			return
		}

		proposal, err := svc.Reject(r.Context(), req.SwapID, req.ProposalID, claims.UserID, req.Reason)
		if err != nil {
			logger.Log.Errorw("failed to reject proposal", "swapID", req.SwapID, "proposalID", req.ProposalID, "actor", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(RejectProposalErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RejectProposalResponse{Success: true, Proposal: *proposal})
	}
}
