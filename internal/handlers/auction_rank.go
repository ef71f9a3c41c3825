package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/services"
)

// ProposalRanker defines the interface that the service must implement.
type ProposalRanker interface {
	Rank(ctx context.Context, swapID uuid.UUID) ([]services.RankedProposal, error)
}

// RankProposalsResponse represents the advisory ranking payload
// swagger:model RankProposalsResponse
type RankProposalsResponse struct {
	Proposals []services.RankedProposal `json:"proposals"`
}

// RankProposalsErrorResponse represents an error response for ranking
// swagger:model RankProposalsErrorResponse
type RankProposalsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewRankProposalsHandler returns an HTTP handler serving the advisory
// proposal ranking for an auction: cash by amount descending, bookings with
// their value difference. Value parity is advisory, never blocking.
// @Summary Rank auction proposals
// @Tags auctions
// @Produce json
// @Param id path string true "Swap ID"
// @Success 200 {object} handlers.RankProposalsResponse
// @Failure 404 {object} handlers.RankProposalsErrorResponse "Swap not found"
// @Router /auctions/{id}/ranking [get]
// @Security BearerAuth
func NewRankProposalsHandler(svc ProposalRanker, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := claimsFromRequest(w, r, tokener); !ok {
			return
		}

		swapID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RankProposalsErrorResponse{Error: "Invalid swap id"})
			return
		}

		ranked, err := svc.Rank(r.Context(), swapID)
		if err != nil {
			w.WriteHeader(statusForError(err))
			json.NewEncoder(w).Encode(RankProposalsErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RankProposalsResponse{Proposals: ranked})
	}
}
