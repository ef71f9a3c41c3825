package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

const proposalColumns = `
	proposal_id, swap_id, proposer_id, type, offered_booking_id,
	cash_amount, cash_currency, payment_method_id, escrow_agreement,
	message, conditions, status, rejection_reason, responded_at,
	created_at, updated_at
`

// ProposalWriteRepository handles proposal write operations
type ProposalWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProposalWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProposalWriteRepository {
	return &ProposalWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProposalWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new proposal.
func (r *ProposalWriteRepository) Save(ctx context.Context, p *models.ProposalDB) error {
	query := `
		INSERT INTO proposals (
			proposal_id, swap_id, proposer_id, type, offered_booking_id,
			cash_amount, cash_currency, payment_method_id, escrow_agreement,
			message, conditions, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	args := []any{
		p.ProposalID, p.SwapID, p.ProposerID, p.Type, p.OfferedBookingID,
		p.CashAmount, p.CashCurrency, p.PaymentMethodID, p.EscrowAgreement,
		p.Message, p.Conditions, p.Status,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{p.ProposalID, p.SwapID, p.ProposerID, p.Type, p.Status},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateStatus performs a guarded terminal transition on a single proposal.
// Returns sql.ErrNoRows when the proposal is not in the expected status.
func (r *ProposalWriteRepository) UpdateStatus(ctx context.Context, proposalID uuid.UUID, expected, next string, reason *string) (*models.ProposalDB, error) {
	query := `
		UPDATE proposals
		SET status = $3,
		    rejection_reason = COALESCE($4, rejection_reason),
		    responded_at = NOW(),
		    updated_at = NOW()
		WHERE proposal_id = $1 AND status = $2
		RETURNING ` + proposalColumns + `
	`

	var proposal models.ProposalDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &proposal, query, proposalID, expected, next, reason)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{proposalID, expected, next, reason},
		"result", proposal.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// RejectAllExcept rejects every pending proposal on a swap except the given
// one in a single statement, so winner selection is all-or-nothing.
func (r *ProposalWriteRepository) RejectAllExcept(ctx context.Context, swapID, keepProposalID uuid.UUID, reason string) (int64, error) {
	query := `
		UPDATE proposals
		SET status = 'rejected',
		    rejection_reason = $3,
		    responded_at = NOW(),
		    updated_at = NOW()
		WHERE swap_id = $1 AND proposal_id <> $2 AND status = 'pending'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, swapID, keepProposalID, reason)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{swapID, keepProposalID, reason},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// CancelActiveBySwapID cancels every pending proposal on a swap. Used when the
// swap itself is cancelled or expires.
func (r *ProposalWriteRepository) CancelActiveBySwapID(ctx context.Context, swapID uuid.UUID, next, reason string) (int64, error) {
	query := `
		UPDATE proposals
		SET status = $2,
		    rejection_reason = $3,
		    responded_at = NOW(),
		    updated_at = NOW()
		WHERE swap_id = $1 AND status = 'pending'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, swapID, next, reason)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{swapID, next, reason},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// CancelActiveByProposer cancels the proposer's pending proposal against a
// swap, if one exists. Resubmission supersedes rather than duplicates.
func (r *ProposalWriteRepository) CancelActiveByProposer(ctx context.Context, swapID, proposerID uuid.UUID) (int64, error) {
	query := `
		UPDATE proposals
		SET status = 'cancelled',
		    responded_at = NOW(),
		    updated_at = NOW()
		WHERE swap_id = $1 AND proposer_id = $2 AND status = 'pending'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, swapID, proposerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{swapID, proposerID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// ProposalReadRepository handles proposal read operations
type ProposalReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProposalReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProposalReadRepository {
	return &ProposalReadRepository{db: db, txGetter: txGetter}
}

func (r *ProposalReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a single proposal by id.
func (r *ProposalReadRepository) GetByID(ctx context.Context, proposalID uuid.UUID) (*models.ProposalDB, error) {
	query := `
		SELECT ` + proposalColumns + `
		FROM proposals
		WHERE proposal_id = $1
	`

	var proposal models.ProposalDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &proposal, query, proposalID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{proposalID},
		"result", proposal.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetActiveByProposerAndSwap returns the proposer's pending proposal against a
// swap, if one exists. At most one can exist at a time.
func (r *ProposalReadRepository) GetActiveByProposerAndSwap(ctx context.Context, swapID, proposerID uuid.UUID) (*models.ProposalDB, error) {
	query := `
		SELECT ` + proposalColumns + `
		FROM proposals
		WHERE swap_id = $1 AND proposer_id = $2 AND status = 'pending'
		LIMIT 1
	`

	var proposal models.ProposalDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &proposal, query, swapID, proposerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{swapID, proposerID},
		"result", proposal.ProposalID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// ListBySwapID returns all proposals against a swap, newest first.
func (r *ProposalReadRepository) ListBySwapID(ctx context.Context, swapID uuid.UUID) ([]models.ProposalDB, error) {
	query := `
		SELECT ` + proposalColumns + `
		FROM proposals
		WHERE swap_id = $1
		ORDER BY created_at DESC
	`

	var proposals []models.ProposalDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &proposals, query, swapID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{swapID},
		"result", len(proposals),
		"error", err,
	)

	return proposals, err
}

// ListByProposerID returns all proposals a user has submitted, newest first.
func (r *ProposalReadRepository) ListByProposerID(ctx context.Context, proposerID uuid.UUID) ([]models.ProposalDB, error) {
	query := `
		SELECT ` + proposalColumns + `
		FROM proposals
		WHERE proposer_id = $1
		ORDER BY created_at DESC
	`

	var proposals []models.ProposalDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &proposals, query, proposerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{proposerID},
		"result", len(proposals),
		"error", err,
	)

	return proposals, err
}
