package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// ProposalReader defines read operations for proposals.
type ProposalReader interface {
	GetByID(ctx context.Context, proposalID uuid.UUID) (*models.ProposalDB, error)
	GetActiveByProposerAndSwap(ctx context.Context, swapID, proposerID uuid.UUID) (*models.ProposalDB, error)
	ListBySwapID(ctx context.Context, swapID uuid.UUID) ([]models.ProposalDB, error)
	ListByProposerID(ctx context.Context, proposerID uuid.UUID) ([]models.ProposalDB, error)
}

// ProposalWriter defines write operations for proposals.
type ProposalWriter interface {
	Save(ctx context.Context, p *models.ProposalDB) error
	UpdateStatus(ctx context.Context, proposalID uuid.UUID, expected, next string, reason *string) (*models.ProposalDB, error)
	RejectAllExcept(ctx context.Context, swapID, keepProposalID uuid.UUID, reason string) (int64, error)
	CancelActiveBySwapID(ctx context.Context, swapID uuid.UUID, next, reason string) (int64, error)
	CancelActiveByProposer(ctx context.Context, swapID, proposerID uuid.UUID) (int64, error)
}

// TargetReader defines read operations for targeting links.
type TargetReader interface {
	GetByID(ctx context.Context, targetID uuid.UUID) (*models.TargetDB, error)
	GetActiveBySource(ctx context.Context, sourceSwapID uuid.UUID) (*models.TargetDB, error)
	ListIncoming(ctx context.Context, targetSwapID uuid.UUID) ([]models.TargetDB, error)
	ListOutgoing(ctx context.Context, sourceSwapID uuid.UUID) ([]models.TargetDB, error)
}

// TargetWriter defines write operations for targeting links.
type TargetWriter interface {
	Save(ctx context.Context, t *models.TargetDB) error
	Cancel(ctx context.Context, targetID uuid.UUID) (int64, error)
	CancelActiveBySource(ctx context.Context, sourceSwapID uuid.UUID) (int64, error)
	CancelActiveByTarget(ctx context.Context, targetSwapID uuid.UUID, keepProposalID *uuid.UUID) (int64, error)
	CancelByProposalID(ctx context.Context, proposalID uuid.UUID) (int64, error)
}

// ContextReader resolves the joined decision context for a swap and proposal.
type ContextReader interface {
	Get(ctx context.Context, swapID uuid.UUID, proposalID *uuid.UUID) *models.SwapContext
}

// DetailsCache caches assembled proposal-details payloads.
type DetailsCache interface {
	GetDetails(ctx context.Context, proposalID, viewerID uuid.UUID) (*models.ProposalDetails, error)
	SetDetails(ctx context.Context, proposalID, viewerID uuid.UUID, details *models.ProposalDetails) error
	InvalidateProposal(ctx context.Context, proposalID uuid.UUID) error
}

// NewProposalInput carries the caller-supplied fields for a proposal. Exactly
// one variant is used depending on Type.
type NewProposalInput struct {
	Type string

	// Booking variant
	OfferedBookingID *uuid.UUID

	// Cash variant
	CashAmount      *float64
	CashCurrency    *string
	PaymentMethodID *string
	EscrowAgreement bool

	Message    string
	Conditions []string
}

// ProposalService handles proposal submission, acceptance and rejection.
type ProposalService struct {
	swapReader     SwapReader
	swapWriter     SwapWriter
	bookingReader  BookingReader
	proposalReader ProposalReader
	proposalWriter ProposalWriter
	targetReader   TargetReader
	targetWriter   TargetWriter
	contextReader  ContextReader
	cache          DetailsCache
	kafkaWriter    KafkaWriter

	now func() time.Time
}

// NewProposalService creates a new ProposalService.
func NewProposalService(
	swapReader SwapReader,
	swapWriter SwapWriter,
	bookingReader BookingReader,
	proposalReader ProposalReader,
	proposalWriter ProposalWriter,
	targetReader TargetReader,
	targetWriter TargetWriter,
	contextReader ContextReader,
	cache DetailsCache,
	kafkaWriter KafkaWriter,
) *ProposalService {
	return &ProposalService{
		swapReader:     swapReader,
		swapWriter:     swapWriter,
		bookingReader:  bookingReader,
		proposalReader: proposalReader,
		proposalWriter: proposalWriter,
		targetReader:   targetReader,
		targetWriter:   targetWriter,
		contextReader:  contextReader,
		cache:          cache,
		kafkaWriter:    kafkaWriter,
		now:            time.Now,
	}
}

// Submit validates a proposal against a swap and stores it. Validation rules
// run in a fixed order and the first violated rule is returned. Resubmission
// by the same proposer supersedes the previous pending proposal instead of
// duplicating it. Booking proposals establish the targeting link from the
// proposer's own swap listing the offered booking, when one exists.
func (s *ProposalService) Submit(ctx context.Context, swapID, proposerID uuid.UUID, in NewProposalInput) (*models.ProposalDB, error) {
	// Rule 1: target swap exists and still accepts proposals. The row lock
	// serializes this check against concurrent transitions.
	swap, err := s.swapWriter.GetForUpdate(ctx, swapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapNotFound
		}
		logger.Log.Errorw("failed to lock swap", "swapID", swapID, "error", err)
		return nil, err
	}

	now := s.now()
	if swap.EffectiveStatus(now) != models.SwapStatusPending {
		return nil, ErrSwapNotAvailable
	}
	if swap.AuctionEnded(now) {
		// No proposal may enter an auction once its window has closed,
		// regardless of whether the winner has been picked yet.
		return nil, ErrSwapNotAvailable
	}

	// Rule 2: no proposing against your own swap.
	if swap.UserID == proposerID {
		return nil, ErrSelfProposalNotAllowed
	}

	// Rules 3 and 4: variant-specific checks.
	var sourceSwapID *uuid.UUID
	switch in.Type {
	case models.ProposalTypeBooking:
		if !swap.BookingExchange || (swap.Strategy == models.StrategyAuction && !swap.AllowBookingProposals) {
			return nil, ErrProposalTypeNotAllowed
		}
		if in.OfferedBookingID == nil {
			return nil, ErrBookingNotEligible
		}
		booking, err := s.bookingReader.GetByID(ctx, *in.OfferedBookingID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrBookingNotEligible
			}
			return nil, err
		}
		if booking.UserID != proposerID || booking.Status != models.BookingStatusAvailable {
			return nil, ErrBookingNotEligible
		}
		if src, err := s.swapReader.GetActiveByBookingID(ctx, *in.OfferedBookingID); err == nil && src.UserID == proposerID {
			sourceSwapID = &src.SwapID
		}
	case models.ProposalTypeCash:
		if !swap.CashPayment || (swap.Strategy == models.StrategyAuction && !swap.AllowCashProposals) {
			return nil, ErrProposalTypeNotAllowed
		}
		if in.CashAmount == nil || *in.CashAmount <= 0 {
			return nil, ErrCashAmountBelowMinimum
		}
		if swap.MinimumCashAmount != nil && *in.CashAmount < *swap.MinimumCashAmount {
			return nil, ErrCashAmountBelowMinimum
		}
		if swap.Strategy == models.StrategyAuction && swap.MinimumCashOffer != nil && *in.CashAmount < *swap.MinimumCashOffer {
			return nil, ErrCashAmountBelowMinimum
		}
		if in.PaymentMethodID == nil || *in.PaymentMethodID == "" {
			return nil, ErrPaymentMethodRequired
		}
	default:
		return nil, ErrProposalTypeNotAllowed
	}

	// Rule 5: message constraints.
	if strings.TrimSpace(in.Message) == "" || len(in.Message) > models.MaxProposalMessageLen {
		return nil, ErrInvalidMessage
	}

	// Supersede any previous pending proposal from this proposer, along with
	// the targeting edge it backed.
	if prev, err := s.proposalReader.GetActiveByProposerAndSwap(ctx, swapID, proposerID); err == nil {
		if _, err := s.proposalWriter.CancelActiveByProposer(ctx, swapID, proposerID); err != nil {
			return nil, err
		}
		if _, err := s.targetWriter.CancelByProposalID(ctx, prev.ProposalID); err != nil {
			return nil, err
		}
		if s.cache != nil {
			_ = s.cache.InvalidateProposal(ctx, prev.ProposalID)
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	proposal := &models.ProposalDB{
		ProposalID:       uuid.New(),
		SwapID:           swapID,
		ProposerID:       proposerID,
		Type:             in.Type,
		OfferedBookingID: in.OfferedBookingID,
		CashAmount:       in.CashAmount,
		CashCurrency:     in.CashCurrency,
		PaymentMethodID:  in.PaymentMethodID,
		EscrowAgreement:  in.EscrowAgreement,
		Message:          in.Message,
		Conditions:       in.Conditions,
		Status:           models.ProposalStatusPending,
	}
	if err := s.proposalWriter.Save(ctx, proposal); err != nil {
		logger.Log.Errorw("failed to save proposal", "swapID", swapID, "proposerID", proposerID, "error", err)
		return nil, err
	}

	// A booking proposal from a swap owner re-points their single outgoing
	// targeting edge at this swap.
	if sourceSwapID != nil {
		if _, err := s.targetWriter.CancelActiveBySource(ctx, *sourceSwapID); err != nil {
			return nil, err
		}
		edge := &models.TargetDB{
			TargetID:     uuid.New(),
			SourceSwapID: *sourceSwapID,
			TargetSwapID: swapID,
			ProposalID:   proposal.ProposalID,
			Status:       models.TargetStatusActive,
		}
		if err := s.targetWriter.Save(ctx, edge); err != nil {
			logger.Log.Errorw("failed to save targeting link", "sourceSwapID", *sourceSwapID, "error", err)
			return nil, err
		}
	}

	return proposal, nil
}

// Accept accepts a proposal on behalf of the swap owner. Accepting one
// proposal implicitly rejects every other pending proposal on the swap, by
// analogy with auction winner selection, and transitions the swap to accepted.
func (s *ProposalService) Accept(ctx context.Context, swapID, proposalID, actorID uuid.UUID) (*models.SwapDB, error) {
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

	now := s.now()
	if swap.EffectiveStatus(now) != models.SwapStatusPending {
		return nil, ErrSwapNotAvailable
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

	rejectionReason := models.RejectionSwapAccepted
	if swap.Strategy == models.StrategyAuction {
		// Before the window closes the owner may only early-close when no
		// competing proposal remains.
		if !swap.AuctionEnded(now) {
			pending, err := s.pendingCount(ctx, swapID)
			if err != nil {
				return nil, err
			}
			if pending > 1 {
				return nil, ErrAuctionNotEnded
			}
		}
		rejectionReason = models.RejectionAuctionClosed
	}

	return s.accept(ctx, swap, proposal, rejectionReason)
}

// accept applies the accept transition: winner accepted, all other pending
// proposals rejected, their targeting edges cancelled, swap accepted. Runs
// inside the request transaction so the state is all-or-nothing.
func (s *ProposalService) accept(ctx context.Context, swap *models.SwapDB, proposal *models.ProposalDB, rejectionReason string) (*models.SwapDB, error) {
	if _, err := s.proposalWriter.UpdateStatus(ctx, proposal.ProposalID, models.ProposalStatusPending, models.ProposalStatusAccepted, nil); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if _, err := s.proposalWriter.RejectAllExcept(ctx, swap.SwapID, proposal.ProposalID, rejectionReason); err != nil {
		return nil, err
	}
	if _, err := s.targetWriter.CancelActiveByTarget(ctx, swap.SwapID, &proposal.ProposalID); err != nil {
		return nil, err
	}

	accepted, err := s.swapWriter.UpdateStatus(ctx, swap.SwapID, models.SwapStatusPending, models.SwapStatusAccepted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.invalidateSwapProposals(ctx, swap.SwapID)
	publishSwapEvent(ctx, s.kafkaWriter, swap.SwapID, models.SwapStatusAccepted)
	return accepted, nil
}

// Reject rejects a single proposal. The swap itself stays pending and other
// proposals are untouched. Rejecting a booking proposal removes the targeting
// edge it backed in the same operation.
func (s *ProposalService) Reject(ctx context.Context, swapID, proposalID, actorID uuid.UUID, reason string) (*models.ProposalDB, error) {
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

	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}
	rejected, err := s.proposalWriter.UpdateStatus(ctx, proposalID, models.ProposalStatusPending, models.ProposalStatusRejected, reasonPtr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProposalNotPending
		}
		return nil, err
	}
	if rejected.SwapID != swapID {
		return nil, ErrProposalNotFound
	}

	if _, err := s.targetWriter.CancelByProposalID(ctx, proposalID); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateProposal(ctx, proposalID)
	}

	return rejected, nil
}

// Details assembles the decision payload for a proposal as seen by viewerID,
// read through the cache. Restrictions explain every reason the viewer cannot
// act rather than only the first.
func (s *ProposalService) Details(ctx context.Context, proposalID, viewerID uuid.UUID) (*models.ProposalDetails, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetDetails(ctx, proposalID, viewerID); err == nil {
			return cached, nil
		}
	}

	proposal, err := s.proposalReader.GetByID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	swap, err := s.swapReader.GetByID(ctx, proposal.SwapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}

	now := s.now()
	details := &models.ProposalDetails{
		Proposal:     *proposal,
		CanAccept:    true,
		CanReject:    true,
		Restrictions: []string{},
	}
	if s.contextReader != nil {
		if sc := s.contextReader.Get(ctx, proposal.SwapID, &proposalID); sc.Err == nil {
			details.Context = sc
		}
	}

	restrict := func(msg string) {
		details.CanAccept = false
		details.CanReject = false
		details.Restrictions = append(details.Restrictions, msg)
	}

	if swap.UserID != viewerID {
		restrict("only the swap owner may respond to this proposal")
	}
	if proposal.Status != models.ProposalStatusPending {
		restrict("proposal has already been responded to")
	}
	if swap.EffectiveStatus(now) != models.SwapStatusPending {
		restrict("swap is no longer accepting responses")
	}
	if swap.Strategy == models.StrategyAuction && !swap.AuctionEnded(now) {
		pending, err := s.pendingCount(ctx, swap.SwapID)
		if err != nil {
			return nil, err
		}
		if pending > 1 {
			details.CanAccept = false
			details.Restrictions = append(details.Restrictions, "auction is still collecting proposals")
		}
	}

	if s.cache != nil {
		_ = s.cache.SetDetails(ctx, proposalID, viewerID, details)
	}
	return details, nil
}

func (s *ProposalService) pendingCount(ctx context.Context, swapID uuid.UUID) (int, error) {
	proposals, err := s.proposalReader.ListBySwapID(ctx, swapID)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := range proposals {
		if proposals[i].Status == models.ProposalStatusPending {
			count++
		}
	}
	return count, nil
}

// invalidateSwapProposals drops cached details for every proposal on a swap
// after a transition that touched them all.
func (s *ProposalService) invalidateSwapProposals(ctx context.Context, swapID uuid.UUID) {
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
