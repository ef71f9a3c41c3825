package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/stayswap/stayswap/internal/jwt"
	"github.com/stayswap/stayswap/internal/services"
)

// Tokener extracts and validates the caller identity from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsFromRequest resolves the authenticated user claims or returns false
// after writing a 401.
func claimsFromRequest(w http.ResponseWriter, r *http.Request, tokener Tokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}
	return claims, true
}

// statusForError maps domain errors to HTTP status codes. Validation and
// authorization failures keep their distinguishing kind; anything unmapped is
// an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrSwapNotFound),
		errors.Is(err, services.ErrProposalNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrTargetNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSwapNotAvailable),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrAuctionNotEnded),
		errors.Is(err, services.ErrProposalNotPending),
		errors.Is(err, services.ErrNotAnAuction):
		return http.StatusConflict
	case errors.Is(err, services.ErrPaymentTypeRequired),
		errors.Is(err, services.ErrAuctionTooCloseToEvent),
		errors.Is(err, services.ErrSelfProposalNotAllowed),
		errors.Is(err, services.ErrBookingNotEligible),
		errors.Is(err, services.ErrCashAmountBelowMinimum),
		errors.Is(err, services.ErrPaymentMethodRequired),
		errors.Is(err, services.ErrInvalidMessage),
		errors.Is(err, services.ErrProposalTypeNotAllowed),
		errors.Is(err, services.ErrInvalidStrategy),
		errors.Is(err, services.ErrInvalidBookingType),
		errors.Is(err, services.ErrInvalidBookingDate):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrAuthorizationDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
