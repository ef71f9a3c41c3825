package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// BookingWriteRepository handles booking write operations
type BookingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookingWriteRepository {
	return &BookingWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookingWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new booking listing.
func (r *BookingWriteRepository) Save(ctx context.Context, b *models.BookingDB) error {
	query := `
		INSERT INTO bookings (
			booking_id, user_id, title, description, type, city, country,
			check_in, check_out, event_date, original_price, swap_value,
			currency, capacity, amenities, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
	`
	args := []any{
		b.BookingID, b.UserID, b.Title, b.Description, b.Type, b.City, b.Country,
		b.CheckIn, b.CheckOut, b.EventDate, b.OriginalPrice, b.SwapValue,
		b.Currency, b.Capacity, b.Amenities, b.Status,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{b.BookingID, b.UserID, b.Type, b.Status},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateStatus moves a booking between statuses with a guard on the current
// status. Returns sql.ErrNoRows (via GetContext) when the guard does not match,
// which callers surface as a conflict.
func (r *BookingWriteRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, expected, next string) error {
	query := `
		UPDATE bookings
		SET status = $3, updated_at = NOW()
		WHERE booking_id = $1 AND status = $2
		RETURNING booking_id
	`

	var id uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, bookingID, expected, next)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookingID, expected, next},
		"result", id,
		"error", err,
	)

	return err
}

// BookingReadRepository handles booking read operations
type BookingReadRepository struct {
	db *sqlx.DB
}

func NewBookingReadRepository(db *sqlx.DB) *BookingReadRepository {
	return &BookingReadRepository{db: db}
}

// GetByID returns a single booking by id.
func (r *BookingReadRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*models.BookingDB, error) {
	const query = `
		SELECT booking_id, user_id, title, description, type, city, country,
		       check_in, check_out, event_date, original_price, swap_value,
		       currency, capacity, amenities, status, created_at, updated_at
		FROM bookings
		WHERE booking_id = $1
	`

	var booking models.BookingDB
	err := r.db.GetContext(ctx, &booking, query, bookingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookingID},
		"result", booking.BookingID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByUserID returns all bookings owned by a user, newest first.
func (r *BookingReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BookingDB, error) {
	const query = `
		SELECT booking_id, user_id, title, description, type, city, country,
		       check_in, check_out, event_date, original_price, swap_value,
		       currency, capacity, amenities, status, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var bookings []models.BookingDB
	err := r.db.SelectContext(ctx, &bookings, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(bookings),
		"error", err,
	)

	return bookings, err
}
