package services

import "errors"

// Not-found errors.
var (
	ErrSwapNotFound     = errors.New("swap not found")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrTargetNotFound   = errors.New("targeting relationship not found")
)

// Conflict errors. A swap that stopped accepting proposals and a lost race
// against a concurrent transition both land here.
var (
	ErrSwapNotAvailable = errors.New("swap is no longer accepting proposals")
	ErrConflict         = errors.New("swap state changed concurrently")
)

// Validation errors, one per violated submission rule so handlers can report
// the exact rule that failed.
var (
	ErrPaymentTypeRequired    = errors.New("at least one of booking exchange or cash payment must be enabled")
	ErrAuctionTooCloseToEvent = errors.New("auction must end at least one week before the booking date; use first match")
	ErrSelfProposalNotAllowed = errors.New("cannot propose against your own swap")
	ErrBookingNotEligible     = errors.New("offered booking is not eligible")
	ErrCashAmountBelowMinimum = errors.New("cash amount is below the swap minimum")
	ErrPaymentMethodRequired  = errors.New("a payment method is required for cash proposals")
	ErrInvalidMessage         = errors.New("message must be non-empty and at most 1000 characters")
	ErrProposalTypeNotAllowed = errors.New("this swap does not accept proposals of that type")
)

// Authorization errors.
var (
	ErrAuthorizationDenied = errors.New("actor is not permitted to perform this transition")
)

// Auction guard errors.
var (
	ErrNotAnAuction       = errors.New("swap does not use the auction strategy")
	ErrAuctionNotEnded    = errors.New("auction has not ended yet")
	ErrProposalNotPending = errors.New("proposal is not pending")
)
