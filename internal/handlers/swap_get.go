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

// SwapGetter defines the interface that the service must implement.
type SwapGetter interface {
	Get(ctx context.Context, swapID uuid.UUID) (*models.SwapDB, error)
}

// TargetViewer resolves the incoming and outgoing target views of a swap.
type TargetViewer interface {
	Incoming(ctx context.Context, swapID uuid.UUID) ([]models.TargetDB, error)
	Outgoing(ctx context.Context, swapID uuid.UUID) ([]models.TargetDB, error)
}

// SwapAutoSelector applies lazy automatic winner selection before a read.
type SwapAutoSelector interface {
	MaybeAutoSelect(ctx context.Context, swapID uuid.UUID) (*models.SwapDB, error)
}

// GetSwapResponse represents a swap with its targeting views
// swagger:model GetSwapResponse
type GetSwapResponse struct {
	Swap     models.SwapDB     `json:"swap"`
	Incoming []models.TargetDB `json:"incoming_targets"`
	Outgoing []models.TargetDB `json:"outgoing_targets"`
}

// GetSwapErrorResponse represents an error response for fetching a swap
// swagger:model GetSwapErrorResponse
type GetSwapErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewGetSwapHandler returns an HTTP handler for fetching a swap with its
// incoming and outgoing targeting views. Expiry and auto-selection are
// evaluated lazily on this read.
// @Summary Get a swap
// @Tags swaps
// @Produce json
// @Param id path string true "Swap ID"
// @Success 200 {object} handlers.GetSwapResponse
// @Failure 404 {object} handlers.GetSwapErrorResponse "Swap not found"
// @Router /swaps/{id} [get]
// @Security BearerAuth
func NewGetSwapHandler(svc SwapGetter, targets TargetViewer, auction SwapAutoSelector, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := claimsFromRequest(w, r, tokener); !ok {
			return
		}

		swapID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetSwapErrorResponse{Error: "Invalid swap id"})
			return
		}

		ctx := r.Context()

		if _, err := auction.MaybeAutoSelect(ctx, swapID); err != nil {
			logger.Log.Errorw("auto-select evaluation failed", "swapID", swapID, "error", err)
		}

		swap, err := svc.Get(ctx, swapID)
		if err != nil {
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(GetSwapErrorResponse{Error: err.Error()})
			return
		}

		incoming, err := targets.Incoming(ctx, swapID)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GetSwapErrorResponse{Error: "Internal server error"})
			return
		}
		outgoing, err := targets.Outgoing(ctx, swapID)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GetSwapErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetSwapResponse{
			Swap:     *swap,
			Incoming: incoming,
			Outgoing: outgoing,
		})
	}
}
