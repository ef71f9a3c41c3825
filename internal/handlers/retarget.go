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

// Retargeter defines the interface that the service must implement.
type Retargeter interface {
	Retarget(ctx context.Context, sourceSwapID, newTargetSwapID, actorID uuid.UUID) (*models.ProposalDB, error)
}

// RetargetRequest represents the JSON body for retargeting a swap
// swagger:model RetargetRequest
type RetargetRequest struct {
	// Swap to point the outgoing proposal at
	// required: true
	NewTargetSwapID uuid.UUID `json:"new_target_swap_id"`
}

// RetargetErrorResponse represents an error response for retargeting
// swagger:model RetargetErrorResponse
type RetargetErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewRetargetHandler returns an HTTP handler for pointing a swap's single
// outgoing targeting link at a new swap. The previous link and its proposal
// are cancelled in the same operation.
// @Summary Retarget a swap
// @Tags targeting
// @Accept json
// @Produce json
// @Param id path string true "Source swap ID"
// @Param request body handlers.RetargetRequest true "New target"
// @Success 201 {object} models.ProposalDB "New proposal created"
// @Failure 403 {object} handlers.RetargetErrorResponse "Not the owner"
// @Failure 409 {object} handlers.RetargetErrorResponse "Already targeting that swap"
// @Router /swaps/{id}/retarget [post]
// @Security BearerAuth
func NewRetargetHandler(svc Retargeter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		sourceSwapID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RetargetErrorResponse{Error: "Invalid swap id"})
			return
		}

		var req RetargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RetargetErrorResponse{Error: "Invalid request body"})
			return
		}

		proposal, err := svc.Retarget(r.Context(), sourceSwapID, req.NewTargetSwapID, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to retarget swap", "sourceSwapID", sourceSwapID, "newTargetSwapID", req.NewTargetSwapID, "actor", claims.UserID, "error", err)
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(RetargetErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(proposal)
	}
}
