package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// WinnerSelector defines the interface that the service must implement.
type WinnerSelector interface {
	SelectWinner(ctx context.Context, swapID, proposalID, actorID uuid.UUID) (*models.SwapDB, error)
}

// SelectWinnerRequest represents the JSON body for selecting an auction winner
// swagger:model SelectWinnerRequest
type SelectWinnerRequest struct {
	// Winning proposal
	// required: true
	ProposalID uuid.UUID `json:"proposal_id"`
}

// SelectWinnerErrorResponse represents an error response for winner selection
// swagger:model SelectWinnerErrorResponse
type SelectWinnerErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewSelectWinnerHandler returns an HTTP handler for selecting the winner of
// an ended auction. The winner is accepted, every other proposal is rejected
// and the swap transitions to accepted, all-or-nothing.
// @Summary Select auction winner
// @Tags auctions
// @Accept json
// @Produce json
// @Param id path string true "Swap ID"
// @Param request body handlers.SelectWinnerRequest true "Winner"
// @Success 200 {object} models.SwapDB "Swap accepted"
// @Failure 403 {object} handlers.SelectWinnerErrorResponse "Not the owner"
// @Failure 409 {object} handlers.SelectWinnerErrorResponse "Auction not ended"
// @Router /auctions/{id}/winner [post]
// @Security BearerAuth
func NewSelectWinnerHandler(svc WinnerSelector, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		swapID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SelectWinnerErrorResponse{Error: "Invalid swap id"})
			return
		}

		var req SelectWinnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SelectWinnerErrorResponse{Error: "Invalid request body"})
			return
		}

		swap, err := svc.SelectWinner(r.Context(), swapID, req.ProposalID, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to select winner", "swapID", swapID, "proposalID", req.ProposalID, "actor", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(SelectWinnerErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(swap)
	}
}
