package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// RankedProposal is the advisory ranking entry shown to auction owners. Cash
// proposals are ordered by amount descending; booking proposals carry the
// signed swap-value difference but are never ordered automatically.
type RankedProposal struct {
	Proposal models.ProposalDB `json:"proposal"`
	// ValueDifference is offered swap value minus the source booking's swap
	// value, for booking proposals only. Advisory, never blocking.
	ValueDifference *float64 `json:"value_difference,omitempty"`
}

// AuctionService manages winner selection for auction-strategy swaps.
type AuctionService struct {
	swapWriter     SwapWriter
	bookingReader  BookingReader
	proposalReader ProposalReader
	proposalWriter ProposalWriter
	targetWriter   TargetWriter
	cache          DetailsCache
	kafkaWriter    KafkaWriter

	now func() time.Time
}

// NewAuctionService creates a new AuctionService.
func NewAuctionService(
	swapWriter SwapWriter,
	bookingReader BookingReader,
	proposalReader ProposalReader,
	proposalWriter ProposalWriter,
	targetWriter TargetWriter,
	cache DetailsCache,
	kafkaWriter KafkaWriter,
) *AuctionService {
	return &AuctionService{
		swapWriter:     swapWriter,
		bookingReader:  bookingReader,
		proposalReader: proposalReader,
		proposalWriter: proposalWriter,
		targetWriter:   targetWriter,
		cache:          cache,
		kafkaWriter:    kafkaWriter,
		now:            time.Now,
	}
}

// SelectWinner marks one proposal as the auction winner. The chosen proposal
// becomes accepted, every other proposal on the auction is rejected and the
// parent swap transitions to accepted, all inside the request transaction so
// no reader ever observes a partially applied selection.
func (s *AuctionService) SelectWinner(ctx context.Context, swapID, proposalID, actorID uuid.UUID) (*models.SwapDB, error) {
	swap, err := s.swapWriter.GetForUpdate(ctx, swapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}
	if swap.UserID != actorID {
		return nil, ErrAuthorizationDenied
	}
	if swap.Strategy != models.StrategyAuction {
		return nil, ErrNotAnAuction
	}

	now := s.now()
	if swap.EffectiveStatus(now) != models.SwapStatusPending {
		return nil, ErrSwapNotAvailable
	}
	if !swap.AuctionEnded(now) {
		return nil, ErrAuctionNotEnded
	}

	proposal, err := s.proposalReader.GetByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	if proposal.SwapID != swapID {
		return nil, ErrProposalNotFound
	}
	if proposal.Status != models.ProposalStatusPending {
		return nil, ErrProposalNotPending
	}

	return s.win(ctx, swapID, proposalID)
}

// win applies the winner transition shared by manual and automatic selection.
func (s *AuctionService) win(ctx context.Context, swapID, proposalID uuid.UUID) (*models.SwapDB, error) {
	if _, err := s.proposalWriter.UpdateStatus(ctx, proposalID, models.ProposalStatusPending, models.ProposalStatusAccepted, nil); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if _, err := s.proposalWriter.RejectAllExcept(ctx, swapID, proposalID, models.RejectionAuctionClosed); err != nil {
		return nil, err
	}
	if _, err := s.targetWriter.CancelActiveByTarget(ctx, swapID, &proposalID); err != nil {
		return nil, err
	}

	accepted, err := s.swapWriter.UpdateStatus(ctx, swapID, models.SwapStatusPending, models.SwapStatusAccepted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.invalidate(ctx, swapID)
	publishSwapEvent(ctx, s.kafkaWriter, swapID, models.SwapStatusAccepted)
	return accepted, nil
}

// invalidate drops cached details for every proposal on a swap after a
// winner selection touched them all.
func (s *AuctionService) invalidate(ctx context.Context, swapID uuid.UUID) {
	if s.cache == nil {
		return
	}
	proposals, err := s.proposalReader.ListBySwapID(ctx, swapID)
	if err != nil {
		logger.Log.Errorw("failed to list proposals for cache invalidation", "swapID", swapID, "error", err)
		return
	}
	for i := range proposals {
		_ = s.cache.InvalidateProposal(ctx, proposals[i].ProposalID)
	}
}

// MaybeAutoSelect applies lazy automatic winner selection. When the auction
// ended and either auto_select_highest is set or the configured grace window
// past the end date has elapsed without owner action, the highest pending cash
// proposal wins. Auctions with no cash proposals are left untouched for manual
// action. Returns the swap when a selection happened, nil otherwise.
func (s *AuctionService) MaybeAutoSelect(ctx context.Context, swapID uuid.UUID) (*models.SwapDB, error) {
	swap, err := s.swapWriter.GetForUpdate(ctx, swapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}
	if swap.Strategy != models.StrategyAuction {
		return nil, nil
	}

	now := s.now()
	if swap.EffectiveStatus(now) != models.SwapStatusPending || !swap.AuctionEnded(now) {
		return nil, nil
	}

	switch {
	case swap.AutoSelectHighest:
		// select immediately once ended
	case swap.AutoSelectAfterHours != nil:
		deadline := swap.AuctionEndDate.Add(time.Duration(*swap.AutoSelectAfterHours) * time.Hour)
		if now.Before(deadline) {
			return nil, nil
		}
	default:
		return nil, nil
	}

	proposals, err := s.proposalReader.ListBySwapID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	var best *models.ProposalDB
	for i := range proposals {
		p := &proposals[i]
		if p.Status != models.ProposalStatusPending || p.Type != models.ProposalTypeCash || p.CashAmount == nil {
			continue
		}
		if best == nil || *p.CashAmount > *best.CashAmount {
			best = p
		}
	}
	if best == nil {
		// No cash proposals to rank. The auction stays open for manual action.
		return nil, nil
	}

	logger.Log.Infow("auto-selecting auction winner", "swapID", swapID, "proposalID", best.ProposalID, "amount", *best.CashAmount)
	return s.win(ctx, swapID, best.ProposalID)
}

// Rank returns proposals for owner review: cash proposals first, ordered by
// amount descending, then booking proposals in arrival order with their
// advisory value difference against the source booking.
func (s *AuctionService) Rank(ctx context.Context, swapID uuid.UUID) ([]RankedProposal, error) {
	swap, err := s.swapWriter.GetForUpdate(ctx, swapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}

	source, err := s.bookingReader.GetByID(ctx, swap.BookingID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	proposals, err := s.proposalReader.ListBySwapID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	var cash, booking []RankedProposal
	for i := range proposals {
		p := proposals[i]
		if p.Status != models.ProposalStatusPending {
			continue
		}
		switch p.Type {
		case models.ProposalTypeCash:
			cash = append(cash, RankedProposal{Proposal: p})
		case models.ProposalTypeBooking:
			entry := RankedProposal{Proposal: p}
			if source != nil && p.OfferedBookingID != nil {
				if offered, err := s.bookingReader.GetByID(ctx, *p.OfferedBookingID); err == nil {
					diff := offered.SwapValue - source.SwapValue
					entry.ValueDifference = &diff
				}
			}
			booking = append(booking, entry)
		}
	}

	sort.SliceStable(cash, func(i, j int) bool {
		return *cash[i].Proposal.CashAmount > *cash[j].Proposal.CashAmount
	})

	return append(cash, booking...), nil
}
