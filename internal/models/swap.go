package models

import (
	"time"

	"github.com/google/uuid"
)

// Swap acceptance strategies.
const (
	StrategyFirstMatch = "first_match"
	StrategyAuction    = "auction"
)

// Swap statuses. StatusActive is a presentation alias for a pending swap whose
// auction is still open; it is never stored.
const (
	SwapStatusPending   = "pending"
	SwapStatusActive    = "active"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCompleted = "completed"
	SwapStatusCancelled = "cancelled"
	SwapStatusExpired   = "expired"
)

// MinAuctionLeadTime is the minimum gap required between an auction's end date
// and the source booking's event/check-in date. Bookings closer than this are
// "last minute" and must use the first_match strategy.
const MinAuctionLeadTime = 7 * 24 * time.Hour

// SwapDB represents a swap listing row in the database
type SwapDB struct {
	SwapID      uuid.UUID `json:"swap_id" db:"swap_id"`           // Unique swap identifier
	BookingID   uuid.UUID `json:"booking_id" db:"booking_id"`     // Source booking being offered
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owner of the listing
	Title       string    `json:"title" db:"title"`               // Listing title
	Description string    `json:"description" db:"description"`   // Listing description

	// Payment type preference. At least one of the two flags must be true.
	BookingExchange     bool     `json:"booking_exchange" db:"booking_exchange"`
	CashPayment         bool     `json:"cash_payment" db:"cash_payment"`
	MinimumCashAmount   *float64 `json:"minimum_cash_amount,omitempty" db:"minimum_cash_amount"`
	PreferredCashAmount *float64 `json:"preferred_cash_amount,omitempty" db:"preferred_cash_amount"`

	// Acceptance strategy. Auction fields are populated only for auction swaps.
	Strategy              string     `json:"strategy" db:"strategy"`
	AuctionEndDate        *time.Time `json:"auction_end_date,omitempty" db:"auction_end_date"`
	AutoSelectHighest     bool       `json:"auto_select_highest" db:"auto_select_highest"`
	AutoSelectAfterHours  *int       `json:"auto_select_after_hours,omitempty" db:"auto_select_after_hours"`
	AllowBookingProposals bool       `json:"allow_booking_proposals" db:"allow_booking_proposals"`
	AllowCashProposals    bool       `json:"allow_cash_proposals" db:"allow_cash_proposals"`
	MinimumCashOffer      *float64   `json:"minimum_cash_offer,omitempty" db:"minimum_cash_offer"`

	Status    string    `json:"status" db:"status"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // Listing expiration

	// Timeline
	ProposedAt  time.Time  `json:"proposed_at" db:"proposed_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty" db:"responded_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsTerminal reports whether the swap is in a state that accepts no further transitions.
func (s *SwapDB) IsTerminal() bool {
	switch s.Status {
	case SwapStatusCompleted, SwapStatusRejected, SwapStatusCancelled, SwapStatusExpired:
		return true
	}
	return false
}

// EffectiveStatus evaluates lazy expiry: a pending swap whose expiration has
// passed reads as expired without any background sweep having run.
func (s *SwapDB) EffectiveStatus(now time.Time) string {
	if s.Status == SwapStatusPending && now.After(s.ExpiresAt) {
		return SwapStatusExpired
	}
	return s.Status
}

// AuctionEnded reports whether the swap uses the auction strategy and its
// collection window has passed.
func (s *SwapDB) AuctionEnded(now time.Time) bool {
	return s.Strategy == StrategyAuction && s.AuctionEndDate != nil && now.After(*s.AuctionEndDate)
}
