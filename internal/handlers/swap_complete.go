package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/facades"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// SwapCompleter defines the interface that the service must implement.
type SwapCompleter interface {
	Complete(ctx context.Context, swapID, actorID uuid.UUID) (*models.SwapDB, error)
}

// CompleteSwapErrorResponse represents an error response for completing a swap
// swagger:model CompleteSwapErrorResponse
type CompleteSwapErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCompleteSwapHandler returns an HTTP handler for executing an accepted
// swap once the external escrow collaborator confirms the exchange.
// @Summary Complete a swap
// @Tags swaps
// @Produce json
// @Param id path string true "Swap ID"
// @Success 200 {object} models.SwapDB "Swap completed"
// @Failure 409 {object} handlers.CompleteSwapErrorResponse "Swap not accepted"
// @Failure 502 {object} handlers.CompleteSwapErrorResponse "Escrow unavailable"
// @Router /swaps/{id}/complete [post]
// @Security BearerAuth
func NewCompleteSwapHandler(svc SwapCompleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		swapID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CompleteSwapErrorResponse{Error: "Invalid swap id"})
			return
		}

		swap, err := svc.Complete(r.Context(), swapID, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to complete swap", "swapID", swapID, "actor", claims.UserID, "error", err)
			if errors.Is(err, facades.ErrEscrowUnavailable) {
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(CompleteSwapErrorResponse{Error: "Escrow confirmation failed, please retry"})
				return
			}
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(CompleteSwapErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(swap)
	}
}
