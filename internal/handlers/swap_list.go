package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// SwapLister defines the interface that the service must implement.
type SwapLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.SwapDB, error)
}

// ListSwapsResponse represents the swap list payload
// swagger:model ListSwapsResponse
type ListSwapsResponse struct {
	Swaps []models.SwapDB `json:"swaps"`
}

// ListSwapsErrorResponse represents an error response for listing swaps
// swagger:model ListSwapsErrorResponse
type ListSwapsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListSwapsHandler returns an HTTP handler for the caller's swap listings.
// @Summary List my swaps
// @Tags swaps
// @Produce json
// @Success 200 {object} handlers.ListSwapsResponse
// @Failure 401 {object} handlers.ListSwapsErrorResponse "Unauthorized"
// @Router /swaps [get]
// @Security BearerAuth
func NewListSwapsHandler(svc SwapLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		swaps, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list swaps", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListSwapsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListSwapsResponse{Swaps: swaps})
	}
}
