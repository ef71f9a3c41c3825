package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// SwapContextReadRepository resolves the full decision context for a swap in a
// single aggregating query joining the swap, its owner, an optional proposal
// and its proposer. Handlers use it for accept/reject permission checks
// without issuing one query per relationship.
type SwapContextReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSwapContextReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SwapContextReadRepository {
	return &SwapContextReadRepository{db: db, txGetter: txGetter}
}

func (r *SwapContextReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Get loads the context for a swap and, when proposalID is non-nil, the named
// proposal. A query failure is logged and returned as a degraded context with
// Err populated rather than as a raw database error.
func (r *SwapContextReadRepository) Get(ctx context.Context, swapID uuid.UUID, proposalID *uuid.UUID) *models.SwapContext {
	const query = `
		SELECT s.swap_id,
		       s.status            AS swap_status,
		       s.strategy          AS swap_strategy,
		       s.expires_at        AS swap_expires_at,
		       s.auction_end_date,
		       u.user_id           AS owner_id,
		       u.username          AS owner_username,
		       p.proposal_id,
		       p.status            AS proposal_status,
		       p.type              AS proposal_type,
		       p.proposer_id,
		       pu.username         AS proposer_username
		FROM swaps s
		JOIN users u ON u.user_id = s.user_id
		LEFT JOIN proposals p ON p.swap_id = s.swap_id AND ($2::UUID IS NULL OR p.proposal_id = $2)
		LEFT JOIN users pu ON pu.user_id = p.proposer_id
		WHERE s.swap_id = $1
		ORDER BY p.created_at DESC NULLS LAST
		LIMIT 1
	`

	var sc models.SwapContext
	err := sqlx.GetContext(ctx, r.executor(ctx), &sc, query, swapID, proposalID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{swapID, proposalID},
		"result", sc.SwapStatus,
		"error", err,
	)

	if err != nil {
		sc.Err = err
	}
	return &sc
}
