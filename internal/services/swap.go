package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// SwapReader defines read operations for swaps.
type SwapReader interface {
	GetByID(ctx context.Context, swapID uuid.UUID) (*models.SwapDB, error)                   // Returns a swap by id
	GetActiveByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.SwapDB, error)   // Returns the live swap listing a booking
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SwapDB, error)             // Returns a user's swaps
}

// SwapWriter defines write operations for swaps.
type SwapWriter interface {
	Save(ctx context.Context, s *models.SwapDB) error                                                  // Inserts a swap
	GetForUpdate(ctx context.Context, swapID uuid.UUID) (*models.SwapDB, error)                        // Locks the swap row for the transaction
	UpdateStatus(ctx context.Context, swapID uuid.UUID, expected, next string) (*models.SwapDB, error) // Guarded status transition
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EscrowConfirmer confirms the external payment/booking-transfer exchange.
type EscrowConfirmer interface {
	Confirm(ctx context.Context, swapID, proposalID uuid.UUID) error // Confirms escrow release for an accepted swap
}

// NewSwapInput carries the caller-supplied fields for a new swap listing.
type NewSwapInput struct {
	BookingID           uuid.UUID
	Title               string
	Description         string
	BookingExchange     bool
	CashPayment         bool
	MinimumCashAmount   *float64
	PreferredCashAmount *float64

	Strategy              string
	AuctionEndDate        *time.Time
	AutoSelectHighest     bool
	AutoSelectAfterHours  *int
	AllowBookingProposals bool
	AllowCashProposals    bool
	MinimumCashOffer      *float64

	ExpiresAt time.Time
}

// SwapService manages swap listings and their lifecycle transitions.
type SwapService struct {
	swapReader     SwapReader
	swapWriter     SwapWriter
	bookingReader  BookingReader
	bookingWriter  BookingWriter
	proposalReader ProposalReader
	proposalWriter ProposalWriter
	targetWriter   TargetWriter
	escrow         EscrowConfirmer
	kafkaWriter    KafkaWriter

	now func() time.Time
}

// NewSwapService creates a new SwapService.
func NewSwapService(
	swapReader SwapReader,
	swapWriter SwapWriter,
	bookingReader BookingReader,
	bookingWriter BookingWriter,
	proposalReader ProposalReader,
	proposalWriter ProposalWriter,
	targetWriter TargetWriter,
	escrow EscrowConfirmer,
	kafkaWriter KafkaWriter,
) *SwapService {
	return &SwapService{
		swapReader:     swapReader,
		swapWriter:     swapWriter,
		bookingReader:  bookingReader,
		bookingWriter:  bookingWriter,
		proposalReader: proposalReader,
		proposalWriter: proposalWriter,
		targetWriter:   targetWriter,
		escrow:         escrow,
		kafkaWriter:    kafkaWriter,
		now:            time.Now,
	}
}

// publishSwapEvent publishes a lifecycle transition to Kafka. Transitions must
// be observable to every party holding a reference to the swap, so this runs
// on every status change.
func (s *SwapService) publishSwapEvent(ctx context.Context, swapID uuid.UUID, newStatus string) {
	publishSwapEvent(ctx, s.kafkaWriter, swapID, newStatus)
}

func publishSwapEvent(ctx context.Context, w KafkaWriter, swapID uuid.UUID, newStatus string) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "swap_id", swapID)
		return
	}

	event := models.SwapEvent{
		EventID:   uuid.NewString(),
		SwapID:    swapID.String(),
		NewStatus: newStatus,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal swap event for Kafka", "swap_id", swapID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.SwapID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish swap event to Kafka", "swap_id", swapID, "error", err)
	} else {
		logger.Log.Infow("Swap event published to Kafka", "swap_id", swapID, "new_status", newStatus)
	}
}

// Create validates and stores a new swap listing against one of the owner's bookings.
func (s *SwapService) Create(ctx context.Context, userID uuid.UUID, in NewSwapInput) (*models.SwapDB, error) {
	if !in.BookingExchange && !in.CashPayment {
		logger.Log.Warnw("swap with no payment type", "userID", userID)
		return nil, ErrPaymentTypeRequired
	}

	booking, err := s.bookingReader.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		logger.Log.Errorw("failed to load source booking", "bookingID", in.BookingID, "error", err)
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrAuthorizationDenied
	}
	if booking.Status != models.BookingStatusAvailable {
		return nil, ErrBookingNotEligible
	}

	switch in.Strategy {
	case models.StrategyFirstMatch:
		// nothing extra to validate
	case models.StrategyAuction:
		if in.AuctionEndDate == nil {
			return nil, ErrAuctionTooCloseToEvent
		}
		// Last-minute bookings cannot run an auction: the collection window
		// must close at least a week before the booking is consumed.
		start := booking.StartDate()
		if start == nil || in.AuctionEndDate.Add(models.MinAuctionLeadTime).After(*start) {
			logger.Log.Warnw("auction too close to booking date",
				"bookingID", in.BookingID, "end_date", in.AuctionEndDate)
			return nil, ErrAuctionTooCloseToEvent
		}
	default:
		return nil, ErrInvalidStrategy
	}

	swap := &models.SwapDB{
		SwapID:              uuid.New(),
		BookingID:           in.BookingID,
		UserID:              userID,
		Title:               in.Title,
		Description:         in.Description,
		BookingExchange:     in.BookingExchange,
		CashPayment:         in.CashPayment,
		MinimumCashAmount:   in.MinimumCashAmount,
		PreferredCashAmount: in.PreferredCashAmount,
		Strategy:            in.Strategy,
		Status:              models.SwapStatusPending,
		ExpiresAt:           in.ExpiresAt,
		ProposedAt:          s.now(),
	}
	if in.Strategy == models.StrategyAuction {
		swap.AuctionEndDate = in.AuctionEndDate
		swap.AutoSelectHighest = in.AutoSelectHighest
		swap.AutoSelectAfterHours = in.AutoSelectAfterHours
		swap.AllowBookingProposals = in.AllowBookingProposals
		swap.AllowCashProposals = in.AllowCashProposals
		swap.MinimumCashOffer = in.MinimumCashOffer
	}

	if err := s.swapWriter.Save(ctx, swap); err != nil {
		logger.Log.Errorw("failed to save swap", "userID", userID, "error", err)
		return nil, err
	}

	s.publishSwapEvent(ctx, swap.SwapID, swap.Status)
	return swap, nil
}

// Get returns a swap with lazy expiry applied: a pending swap past its
// expiration reads as expired, and the observation is persisted so the
// outstanding proposals expire in the same operation.
func (s *SwapService) Get(ctx context.Context, swapID uuid.UUID) (*models.SwapDB, error) {
	swap, err := s.swapReader.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSwapNotFound
		}
		logger.Log.Errorw("failed to get swap", "swapID", swapID, "error", err)
		return nil, err
	}

	if swap.EffectiveStatus(s.now()) == models.SwapStatusExpired && swap.Status == models.SwapStatusPending {
		if expired, err := s.expire(ctx, swapID); err == nil {
			return expired, nil
		}
		// The concurrent winner of the expiry race already persisted it.
		swap.Status = models.SwapStatusExpired
	}
	return swap, nil
}

// expire persists a lazily observed expiration.
func (s *SwapService) expire(ctx context.Context, swapID uuid.UUID) (*models.SwapDB, error) {
	swap, err := s.swapWriter.UpdateStatus(ctx, swapID, models.SwapStatusPending, models.SwapStatusExpired)
	if err != nil {
		return nil, err
	}
	if _, err := s.proposalWriter.CancelActiveBySwapID(ctx, swapID, models.ProposalStatusExpired, "swap expired"); err != nil {
		logger.Log.Errorw("failed to expire proposals", "swapID", swapID, "error", err)
		return nil, err
	}
	if _, err := s.targetWriter.CancelActiveByTarget(ctx, swapID, nil); err != nil {
		logger.Log.Errorw("failed to cancel incoming targets on expiry", "swapID", swapID, "error", err)
		return nil, err
	}
	s.publishSwapEvent(ctx, swapID, models.SwapStatusExpired)
	return swap, nil
}

// List returns the swaps owned by a user with effective statuses.
func (s *SwapService) List(ctx context.Context, userID uuid.UUID) ([]models.SwapDB, error) {
	swaps, err := s.swapReader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list swaps", "userID", userID, "error", err)
		return nil, err
	}
	now := s.now()
	for i := range swaps {
		swaps[i].Status = swaps[i].EffectiveStatus(now)
	}
	return swaps, nil
}

// Cancel cancels a pending swap. Only the owner may cancel; every outstanding
// proposal is cancelled implicitly and incoming/outgoing targeting links are
// removed in the same operation.
func (s *SwapService) Cancel(ctx context.Context, swapID, actorID uuid.UUID) (*models.SwapDB, error) {
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
	if swap.EffectiveStatus(s.now()) != models.SwapStatusPending {
		return nil, ErrSwapNotAvailable
	}

	cancelled, err := s.swapWriter.UpdateStatus(ctx, swapID, models.SwapStatusPending, models.SwapStatusCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConflict
		}
		logger.Log.Errorw("failed to cancel swap", "swapID", swapID, "error", err)
		return nil, err
	}

	if _, err := s.proposalWriter.CancelActiveBySwapID(ctx, swapID, models.ProposalStatusCancelled, models.RejectionSwapCancelled); err != nil {
		logger.Log.Errorw("failed to cancel proposals", "swapID", swapID, "error", err)
		return nil, err
	}
	if _, err := s.targetWriter.CancelActiveByTarget(ctx, swapID, nil); err != nil {
		return nil, err
	}
	if _, err := s.targetWriter.CancelActiveBySource(ctx, swapID); err != nil {
		return nil, err
	}

	s.publishSwapEvent(ctx, swapID, models.SwapStatusCancelled)
	return cancelled, nil
}

// Complete executes an accepted swap: the external escrow collaborator
// confirms the exchange, the swap transitions to completed and both bookings
// involved become swapped. An escrow failure leaves the swap accepted and is
// surfaced to the caller for retry.
func (s *SwapService) Complete(ctx context.Context, swapID, actorID uuid.UUID) (*models.SwapDB, error) {
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
	if swap.Status != models.SwapStatusAccepted {
		return nil, ErrConflict
	}

	winner, err := s.acceptedProposal(ctx, swapID)
	if err != nil {
		return nil, err
	}

	if err := s.escrow.Confirm(ctx, swapID, winner.ProposalID); err != nil {
		logger.Log.Errorw("escrow confirmation failed", "swapID", swapID, "proposalID", winner.ProposalID, "error", err)
		return nil, err
	}

	completed, err := s.swapWriter.UpdateStatus(ctx, swapID, models.SwapStatusAccepted, models.SwapStatusCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if err := s.bookingWriter.UpdateStatus(ctx, swap.BookingID, models.BookingStatusAvailable, models.BookingStatusSwapped); err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("failed to mark source booking swapped", "bookingID", swap.BookingID, "error", err)
		return nil, err
	}
	if winner.Type == models.ProposalTypeBooking && winner.OfferedBookingID != nil {
		if err := s.bookingWriter.UpdateStatus(ctx, *winner.OfferedBookingID, models.BookingStatusAvailable, models.BookingStatusSwapped); err != nil && !errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("failed to mark offered booking swapped", "bookingID", *winner.OfferedBookingID, "error", err)
			return nil, err
		}
	}

	s.publishSwapEvent(ctx, swapID, models.SwapStatusCompleted)
	return completed, nil
}

// acceptedProposal finds the single accepted proposal on a swap.
func (s *SwapService) acceptedProposal(ctx context.Context, swapID uuid.UUID) (*models.ProposalDB, error) {
	proposals, err := s.proposalReader.ListBySwapID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	for i := range proposals {
		if proposals[i].Status == models.ProposalStatusAccepted {
			return &proposals[i], nil
		}
	}
	return nil, ErrProposalNotFound
}

// ErrInvalidStrategy is returned when a swap names an unknown acceptance strategy.
var ErrInvalidStrategy = errors.New("unknown acceptance strategy")
