package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

const swapColumns = `
	swap_id, booking_id, user_id, title, description,
	booking_exchange, cash_payment, minimum_cash_amount, preferred_cash_amount,
	strategy, auction_end_date, auto_select_highest, auto_select_after_hours,
	allow_booking_proposals, allow_cash_proposals, minimum_cash_offer,
	status, expires_at, proposed_at, responded_at, completed_at,
	created_at, updated_at
`

// SwapWriteRepository handles swap write operations
type SwapWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSwapWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SwapWriteRepository {
	return &SwapWriteRepository{db: db, txGetter: txGetter}
}

func (r *SwapWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new swap listing.
func (r *SwapWriteRepository) Save(ctx context.Context, s *models.SwapDB) error {
	query := `
		INSERT INTO swaps (
			swap_id, booking_id, user_id, title, description,
			booking_exchange, cash_payment, minimum_cash_amount, preferred_cash_amount,
			strategy, auction_end_date, auto_select_highest, auto_select_after_hours,
			allow_booking_proposals, allow_cash_proposals, minimum_cash_offer,
			status, expires_at, proposed_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW(), NOW())
	`
	args := []any{
		s.SwapID, s.BookingID, s.UserID, s.Title, s.Description,
		s.BookingExchange, s.CashPayment, s.MinimumCashAmount, s.PreferredCashAmount,
		s.Strategy, s.AuctionEndDate, s.AutoSelectHighest, s.AutoSelectAfterHours,
		s.AllowBookingProposals, s.AllowCashProposals, s.MinimumCashOffer,
		s.Status, s.ExpiresAt,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{s.SwapID, s.BookingID, s.UserID, s.Strategy, s.Status},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// GetForUpdate loads a swap row with a row-level lock inside the request
// transaction. Competing transitions against the same swap serialize here.
func (r *SwapWriteRepository) GetForUpdate(ctx context.Context, swapID uuid.UUID) (*models.SwapDB, error) {
	query := `
		SELECT ` + swapColumns + `
		FROM swaps
		WHERE swap_id = $1
		FOR UPDATE
	`

	var swap models.SwapDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &swap, query, swapID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{swapID},
		"result", swap.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &swap, nil
}

// UpdateStatus performs a guarded status transition. The WHERE clause pins the
// expected current status so a lost race surfaces as sql.ErrNoRows instead of
// silently overwriting a concurrent transition. The response timestamp is
// stamped according to the transition: completed_at for completion, otherwise
// responded_at.
func (r *SwapWriteRepository) UpdateStatus(ctx context.Context, swapID uuid.UUID, expected, next string) (*models.SwapDB, error) {
	query := `
		UPDATE swaps
		SET status = $3,
		    responded_at = CASE WHEN $3 IN ('accepted', 'rejected', 'cancelled', 'expired') THEN NOW() ELSE responded_at END,
		    completed_at = CASE WHEN $3 = 'completed' THEN NOW() ELSE completed_at END,
		    updated_at = NOW()
		WHERE swap_id = $1 AND status = $2
		RETURNING ` + swapColumns + `
	`

	var swap models.SwapDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &swap, query, swapID, expected, next)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{swapID, expected, next},
		"result", swap.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &swap, nil
}

// SwapReadRepository handles swap read operations
type SwapReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSwapReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SwapReadRepository {
	return &SwapReadRepository{db: db, txGetter: txGetter}
}

func (r *SwapReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a single swap by id.
func (r *SwapReadRepository) GetByID(ctx context.Context, swapID uuid.UUID) (*models.SwapDB, error) {
	query := `
		SELECT ` + swapColumns + `
		FROM swaps
		WHERE swap_id = $1
	`

	var swap models.SwapDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &swap, query, swapID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{swapID},
		"result", swap.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &swap, nil
}

// GetActiveByBookingID returns the non-terminal swap listing a booking, if any.
func (r *SwapReadRepository) GetActiveByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.SwapDB, error) {
	query := `
		SELECT ` + swapColumns + `
		FROM swaps
		WHERE booking_id = $1 AND status IN ('pending', 'accepted')
		LIMIT 1
	`

	var swap models.SwapDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &swap, query, bookingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookingID},
		"result", swap.SwapID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &swap, nil
}

// ListByUserID returns all swaps owned by a user, newest first.
func (r *SwapReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SwapDB, error) {
	query := `
		SELECT ` + swapColumns + `
		FROM swaps
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var swaps []models.SwapDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &swaps, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(swaps),
		"error", err,
	)

	return swaps, err
}
