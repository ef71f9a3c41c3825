package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

const targetColumns = `
	target_id, source_swap_id, target_swap_id, proposal_id, status,
	created_at, updated_at
`

// TargetWriteRepository handles targeting link write operations
type TargetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTargetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TargetWriteRepository {
	return &TargetWriteRepository{db: db, txGetter: txGetter}
}

func (r *TargetWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new active targeting edge.
func (r *TargetWriteRepository) Save(ctx context.Context, t *models.TargetDB) error {
	query := `
		INSERT INTO swap_targets (target_id, source_swap_id, target_swap_id, proposal_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{t.TargetID, t.SourceSwapID, t.TargetSwapID, t.ProposalID, t.Status}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Cancel marks a targeting edge cancelled. Cancelling an already-cancelled
// edge affects zero rows and is not an error, so the operation is idempotent.
func (r *TargetWriteRepository) Cancel(ctx context.Context, targetID uuid.UUID) (int64, error) {
	query := `
		UPDATE swap_targets
		SET status = 'cancelled', updated_at = NOW()
		WHERE target_id = $1 AND status = 'active'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, targetID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{targetID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// CancelActiveBySource cancels whatever active edge currently originates from
// the source swap. A source swap targets at most one swap at a time, so this
// runs before a new edge is created.
func (r *TargetWriteRepository) CancelActiveBySource(ctx context.Context, sourceSwapID uuid.UUID) (int64, error) {
	query := `
		UPDATE swap_targets
		SET status = 'cancelled', updated_at = NOW()
		WHERE source_swap_id = $1 AND status = 'active'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, sourceSwapID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sourceSwapID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// CancelActiveByTarget cancels every active edge pointing at a swap, except
// the one backing keepProposalID when it is non-nil. Runs when the target swap
// leaves the pending state, so losing proposers' incoming entries disappear in
// the same transaction as the proposal rejections.
func (r *TargetWriteRepository) CancelActiveByTarget(ctx context.Context, targetSwapID uuid.UUID, keepProposalID *uuid.UUID) (int64, error) {
	query := `
		UPDATE swap_targets
		SET status = 'cancelled', updated_at = NOW()
		WHERE target_swap_id = $1 AND status = 'active'
		  AND ($2::UUID IS NULL OR proposal_id <> $2)
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, targetSwapID, keepProposalID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{targetSwapID, keepProposalID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// CancelByProposalID cancels the edge backing a proposal, if any. Used when
// the proposal itself is rejected or cancelled.
func (r *TargetWriteRepository) CancelByProposalID(ctx context.Context, proposalID uuid.UUID) (int64, error) {
	query := `
		UPDATE swap_targets
		SET status = 'cancelled', updated_at = NOW()
		WHERE proposal_id = $1 AND status = 'active'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, proposalID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{proposalID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// TargetReadRepository handles targeting link read operations
type TargetReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTargetReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TargetReadRepository {
	return &TargetReadRepository{db: db, txGetter: txGetter}
}

func (r *TargetReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a single targeting edge by id.
func (r *TargetReadRepository) GetByID(ctx context.Context, targetID uuid.UUID) (*models.TargetDB, error) {
	query := `
		SELECT ` + targetColumns + `
		FROM swap_targets
		WHERE target_id = $1
	`

	var target models.TargetDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &target, query, targetID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{targetID},
		"result", target.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &target, nil
}

// GetActiveBySource returns the single active outgoing edge of a swap, if any.
func (r *TargetReadRepository) GetActiveBySource(ctx context.Context, sourceSwapID uuid.UUID) (*models.TargetDB, error) {
	query := `
		SELECT ` + targetColumns + `
		FROM swap_targets
		WHERE source_swap_id = $1 AND status = 'active'
		LIMIT 1
	`

	var target models.TargetDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &target, query, sourceSwapID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sourceSwapID},
		"result", target.TargetID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &target, nil
}

// ListIncoming returns the active edges pointing at a swap. Many swaps may
// target the same listing concurrently.
func (r *TargetReadRepository) ListIncoming(ctx context.Context, targetSwapID uuid.UUID) ([]models.TargetDB, error) {
	query := `
		SELECT ` + targetColumns + `
		FROM swap_targets
		WHERE target_swap_id = $1 AND status = 'active'
		ORDER BY created_at DESC
	`

	var targets []models.TargetDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &targets, query, targetSwapID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{targetSwapID},
		"result", len(targets),
		"error", err,
	)

	return targets, err
}

// ListOutgoing returns the active edges originating from a swap. The single
// outgoing invariant means this holds at most one row, but the list shape
// keeps the two views symmetric.
func (r *TargetReadRepository) ListOutgoing(ctx context.Context, sourceSwapID uuid.UUID) ([]models.TargetDB, error) {
	query := `
		SELECT ` + targetColumns + `
		FROM swap_targets
		WHERE source_swap_id = $1 AND status = 'active'
		ORDER BY created_at DESC
	`

	var targets []models.TargetDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &targets, query, sourceSwapID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sourceSwapID},
		"result", len(targets),
		"error", err,
	)

	return targets, err
}
