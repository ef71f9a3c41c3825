package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
)

// ErrEscrowUnavailable is returned when the external escrow service cannot
// confirm an exchange. The swap stays accepted and the caller may retry.
var ErrEscrowUnavailable = errors.New("escrow service unavailable")

// EscrowHTTPFacade confirms exchanges against the external escrow/payment
// service over HTTP.
type EscrowHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewEscrowHTTPFacade creates a new facade pointing at the escrow service.
func NewEscrowHTTPFacade(baseURL string, timeout time.Duration) *EscrowHTTPFacade {
	return &EscrowHTTPFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type confirmRequest struct {
	SwapID     string `json:"swap_id"`
	ProposalID string `json:"proposal_id"`
}

type confirmResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Confirm asks the escrow service to release the funds/transfer for an
// accepted swap. Failures are logged and mapped to ErrEscrowUnavailable so
// callers see a typed, retryable error instead of a transport error.
func (f *EscrowHTTPFacade) Confirm(ctx context.Context, swapID, proposalID uuid.UUID) error {
	body, err := json.Marshal(confirmRequest{
		SwapID:     swapID.String(),
		ProposalID: proposalID.String(),
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/v1/escrow/confirm", f.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("escrow confirm request failed", "swap_id", swapID, "error", err)
		return ErrEscrowUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("escrow confirm rejected", "swap_id", swapID, "status", resp.StatusCode)
		return ErrEscrowUnavailable
	}

	var out confirmResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Log.Errorw("escrow confirm response malformed", "swap_id", swapID, "error", err)
		return ErrEscrowUnavailable
	}
	if !out.Success {
		logger.Log.Errorw("escrow confirm declined", "swap_id", swapID, "reason", out.Error)
		return ErrEscrowUnavailable
	}

	logger.Log.Infow("escrow confirmed", "swap_id", swapID, "proposal_id", proposalID)
	return nil
}
