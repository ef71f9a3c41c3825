package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// ProposalSubmitter submits proposals on behalf of a targeting operation.
type ProposalSubmitter interface {
	Submit(ctx context.Context, swapID, proposerID uuid.UUID, in NewProposalInput) (*models.ProposalDB, error)
}

// TargetingService maintains the directed swap-to-swap targeting links. Both
// the incoming and outgoing views are lookups over the single canonical edge.
type TargetingService struct {
	swapReader     SwapReader
	swapWriter     SwapWriter
	targetReader   TargetReader
	targetWriter   TargetWriter
	proposalWriter ProposalWriter
	submitter      ProposalSubmitter
	cache          DetailsCache
}

// NewTargetingService creates a new TargetingService.
func NewTargetingService(
	swapReader SwapReader,
	swapWriter SwapWriter,
	targetReader TargetReader,
	targetWriter TargetWriter,
	proposalWriter ProposalWriter,
	submitter ProposalSubmitter,
	cache DetailsCache,
) *TargetingService {
	return &TargetingService{
		swapReader:     swapReader,
		swapWriter:     swapWriter,
		targetReader:   targetReader,
		targetWriter:   targetWriter,
		proposalWriter: proposalWriter,
		submitter:      submitter,
		cache:          cache,
	}
}

// Retarget points a swap's single outgoing edge at a new target. Any existing
// edge is cancelled first together with its backing proposal, then a fresh
// booking proposal is submitted against the new target, which re-establishes
// the edge. The source swap row is locked for the duration of the request
// transaction, so two concurrent retargets of the same swap serialize and a
// source swap is never observed with two active outgoing targets.
func (s *TargetingService) Retarget(ctx context.Context, sourceSwapID, newTargetSwapID, actorID uuid.UUID) (*models.ProposalDB, error) {
	source, err := s.swapWriter.GetForUpdate(ctx, sourceSwapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}
	if source.UserID != actorID {
		return nil, ErrAuthorizationDenied
	}

	if edge, err := s.targetReader.GetActiveBySource(ctx, sourceSwapID); err == nil {
		if edge.TargetSwapID == newTargetSwapID {
			return nil, ErrConflict
		}
		if err := s.cancelEdge(ctx, edge); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	proposal, err := s.submitter.Submit(ctx, newTargetSwapID, actorID, NewProposalInput{
		Type:             models.ProposalTypeBooking,
		OfferedBookingID: &source.BookingID,
		Message:          "Proposing a direct booking exchange.",
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("swap retargeted", "sourceSwapID", sourceSwapID, "newTargetSwapID", newTargetSwapID, "proposalID", proposal.ProposalID)
	return proposal, nil
}

// CancelTargeting cancels an outgoing edge. The backing proposal is rejected
// and the link removed in the same operation, so the target owner's incoming
// list and the proposal state never disagree. Cancelling an already-cancelled
// edge is a no-op, not an error.
func (s *TargetingService) CancelTargeting(ctx context.Context, sourceSwapID, targetID, actorID uuid.UUID) error {
	edge, err := s.targetReader.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTargetNotFound
		}
		return err
	}
	if edge.SourceSwapID != sourceSwapID {
		return ErrTargetNotFound
	}

	source, err := s.swapReader.GetByID(ctx, sourceSwapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSwapNotFound
		}
		return err
	}
	if source.UserID != actorID {
		return ErrAuthorizationDenied
	}

	if edge.Status != models.TargetStatusActive {
		// Idempotent: the second cancel of the same link does nothing.
		return nil
	}

	return s.cancelEdge(ctx, edge)
}

// cancelEdge rejects the proposal backing an edge and cancels the edge itself.
func (s *TargetingService) cancelEdge(ctx context.Context, edge *models.TargetDB) error {
	reason := models.RejectionTargetingCancelled
	if _, err := s.proposalWriter.UpdateStatus(ctx, edge.ProposalID, models.ProposalStatusPending, models.ProposalStatusRejected, &reason); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if _, err := s.targetWriter.Cancel(ctx, edge.TargetID); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateProposal(ctx, edge.ProposalID)
	}
	return nil
}

// Incoming returns the active edges targeting a swap, visible to its owner.
func (s *TargetingService) Incoming(ctx context.Context, swapID uuid.UUID) ([]models.TargetDB, error) {
	targets, err := s.targetReader.ListIncoming(ctx, swapID)
	if err != nil {
		logger.Log.Errorw("failed to list incoming targets", "swapID", swapID, "error", err)
		return nil, err
	}
	return targets, nil
}

// Outgoing returns the active edge originating from a swap, visible to its owner.
func (s *TargetingService) Outgoing(ctx context.Context, swapID uuid.UUID) ([]models.TargetDB, error) {
	targets, err := s.targetReader.ListOutgoing(ctx, swapID)
	if err != nil {
		logger.Log.Errorw("failed to list outgoing targets", "swapID", swapID, "error", err)
		return nil, err
	}
	return targets, nil
}
