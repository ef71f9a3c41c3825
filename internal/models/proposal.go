package models

import (
	"time"

	"github.com/google/uuid"
)

// Proposal types. A proposal offers either a booking in exchange or cash,
// never both; the variant-specific columns are nullable and the type column
// discriminates them.
const (
	ProposalTypeBooking = "booking"
	ProposalTypeCash    = "cash"
)

// Proposal statuses.
const (
	ProposalStatusPending   = "pending"
	ProposalStatusAccepted  = "accepted"
	ProposalStatusRejected  = "rejected"
	ProposalStatusExpired   = "expired"
	ProposalStatusCancelled = "cancelled"
)

// Rejection reasons written by the system rather than the swap owner.
const (
	RejectionAuctionClosed      = "auction closed - different winner selected"
	RejectionTargetingCancelled = "targeting cancelled by proposer"
	RejectionSwapCancelled      = "swap cancelled by owner"
	RejectionSwapAccepted       = "swap accepted a different proposal"
)

// MaxProposalMessageLen is the upper bound on the proposer's message.
const MaxProposalMessageLen = 1000

// ProposalDB represents a proposal row in the database
type ProposalDB struct {
	ProposalID uuid.UUID `json:"proposal_id" db:"proposal_id"` // Unique proposal identifier
	SwapID     uuid.UUID `json:"swap_id" db:"swap_id"`         // Target swap
	ProposerID uuid.UUID `json:"proposer_id" db:"proposer_id"` // User making the offer
	Type       string    `json:"type" db:"type"`               // booking or cash

	// Booking variant
	OfferedBookingID *uuid.UUID `json:"offered_booking_id,omitempty" db:"offered_booking_id"`

	// Cash variant
	CashAmount      *float64 `json:"cash_amount,omitempty" db:"cash_amount"`
	CashCurrency    *string  `json:"cash_currency,omitempty" db:"cash_currency"`
	PaymentMethodID *string  `json:"payment_method_id,omitempty" db:"payment_method_id"`
	EscrowAgreement bool     `json:"escrow_agreement" db:"escrow_agreement"`

	Message    string     `json:"message" db:"message"`         // Proposer's message to the owner
	Conditions StringList `json:"conditions" db:"conditions"`   // Ordered free-text conditions

	Status          string     `json:"status" db:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty" db:"rejection_reason"`
	RespondedAt     *time.Time `json:"responded_at,omitempty" db:"responded_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsTerminal reports whether the proposal has already received its one
// terminal transition.
func (p *ProposalDB) IsTerminal() bool {
	switch p.Status {
	case ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusExpired, ProposalStatusCancelled:
		return true
	}
	return false
}
