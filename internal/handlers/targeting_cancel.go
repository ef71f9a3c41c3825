package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
)

// TargetingCanceller defines the interface that the service must implement.
type TargetingCanceller interface {
	CancelTargeting(ctx context.Context, sourceSwapID, targetID, actorID uuid.UUID) error
}

// CancelTargetingResponse represents a successful cancellation response
// swagger:model CancelTargetingResponse
type CancelTargetingResponse struct {
	// Whether the link is cancelled (true also when it already was)
	// default: true
	Success bool `json:"success"`
}

// CancelTargetingErrorResponse represents an error response for cancellation
// swagger:model CancelTargetingErrorResponse
type CancelTargetingErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCancelTargetingHandler returns an HTTP handler for cancelling a targeting
// link. The backing proposal is rejected in the same operation. Cancelling an
// already-cancelled link succeeds without effect.
// @Summary Cancel a targeting link
// @Tags targeting
// @Produce json
// @Param id path string true "Source swap ID"
// @Param targetID path string true "Targeting link ID"
// @Success 200 {object} handlers.CancelTargetingResponse
// @Failure 403 {object} handlers.CancelTargetingErrorResponse "Not the owner"
// @Failure 404 {object} handlers.CancelTargetingErrorResponse "Link not found"
// @Router /swaps/{id}/targets/{targetID} [delete]
// @Security BearerAuth
func NewCancelTargetingHandler(svc TargetingCanceller, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		sourceSwapID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CancelTargetingErrorResponse{Error: "Invalid swap id"})
			return
		}
		targetID, err := uuid.Parse(chi.URLParam(r, "targetID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CancelTargetingErrorResponse{Error: "Invalid target id"})
			return
		}

		if err := svc.CancelTargeting(r.Context(), sourceSwapID, targetID, claims.UserID); err != nil {
			logger.Log.Errorw("failed to cancel targeting", "sourceSwapID", sourceSwapID, "targetID", targetID, "actor", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(CancelTargetingErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CancelTargetingResponse{Success: true})
	}
}
