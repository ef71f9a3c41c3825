package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/models"
)

// ProposalDetailer defines the interface that the service must implement.
type ProposalDetailer interface {
	Details(ctx context.Context, proposalID, viewerID uuid.UUID) (*models.ProposalDetails, error)
}

// ProposalDetailsErrorResponse represents an error response for proposal details
// swagger:model ProposalDetailsErrorResponse
type ProposalDetailsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewProposalDetailsHandler returns an HTTP handler serving a proposal along
// with whether the viewer can accept or reject it and the restrictions in play.
// @Summary Get proposal details
// @Tags proposals
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} models.ProposalDetails
// @Failure 404 {object} handlers.ProposalDetailsErrorResponse "Proposal not found"
// @Router /proposals/{id} [get]
// @Security BearerAuth
func NewProposalDetailsHandler(svc ProposalDetailer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		proposalID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProposalDetailsErrorResponse{Error: "Invalid proposal id"})
			return
		}

		details, err := svc.Details(r.Context(), proposalID, claims.UserID)
		if err != nil {
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(ProposalDetailsErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(details)
	}
}
