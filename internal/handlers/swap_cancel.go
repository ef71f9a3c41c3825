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

// SwapCanceller defines the interface that the service must implement.
type SwapCanceller interface {
	Cancel(ctx context.Context, swapID, actorID uuid.UUID) (*models.SwapDB, error)
}

// CancelSwapErrorResponse represents an error response for cancelling a swap
// swagger:model CancelSwapErrorResponse
type CancelSwapErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCancelSwapHandler returns an HTTP handler for cancelling a pending swap.
// All outstanding proposals are cancelled with it.
// @Summary Cancel a swap
// @Tags swaps
// @Produce json
// @Param id path string true "Swap ID"
// @Success 200 {object} models.SwapDB "Swap cancelled"
// @Failure 403 {object} handlers.CancelSwapErrorResponse "Not the owner"
// @Failure 409 {object} handlers.CancelSwapErrorResponse "Swap no longer pending"
// @Router /swaps/{id}/cancel [post]
// @Security BearerAuth
func NewCancelSwapHandler(svc SwapCanceller, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		swapID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CancelSwapErrorResponse{Error: "Invalid swap id"})
			return
		}

		swap, err := svc.Cancel(r.Context(), swapID, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to cancel swap", "swapID", swapID, "actor", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(CancelSwapErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(swap)
	}
}
