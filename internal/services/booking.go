package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/logger"
	"github.com/stayswap/stayswap/internal/models"
)

// BookingReader defines read operations for bookings.
type BookingReader interface {
	GetByID(ctx context.Context, bookingID uuid.UUID) (*models.BookingDB, error)       // Returns a booking by id
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BookingDB, error)    // Returns a user's bookings
}

// BookingWriter defines write operations for bookings.
type BookingWriter interface {
	Save(ctx context.Context, b *models.BookingDB) error                                    // Inserts a booking
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, expected, next string) error     // Guarded status transition
}

// NewBookingInput carries the caller-supplied fields for a new booking listing.
type NewBookingInput struct {
	Title         string
	Description   string
	Type          string
	City          string
	Country       string
	CheckIn       *time.Time
	CheckOut      *time.Time
	EventDate     *time.Time
	OriginalPrice float64
	SwapValue     float64
	Currency      string
	Capacity      int
	Amenities     []string
}

// Booking-specific validation errors.
var (
	ErrInvalidBookingType = errors.New("unknown booking type")
	ErrInvalidBookingDate = errors.New("booking requires an event date or a check-in/check-out range")
)

// BookingService manages booking listings.
type BookingService struct {
	reader BookingReader
	writer BookingWriter
}

// NewBookingService creates a new BookingService.
func NewBookingService(reader BookingReader, writer BookingWriter) *BookingService {
	return &BookingService{reader: reader, writer: writer}
}

// Create validates and stores a new booking owned by userID.
func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, in NewBookingInput) (*models.BookingDB, error) {
	if _, ok := models.ValidBookingTypes[in.Type]; !ok {
		logger.Log.Warnw("invalid booking type", "type", in.Type)
		return nil, ErrInvalidBookingType
	}
	if in.EventDate == nil && (in.CheckIn == nil || in.CheckOut == nil) {
		logger.Log.Warnw("booking has no usable date", "type", in.Type)
		return nil, ErrInvalidBookingDate
	}

	booking := &models.BookingDB{
		BookingID:     uuid.New(),
		UserID:        userID,
		Title:         in.Title,
		Description:   in.Description,
		Type:          in.Type,
		City:          in.City,
		Country:       in.Country,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		EventDate:     in.EventDate,
		OriginalPrice: in.OriginalPrice,
		SwapValue:     in.SwapValue,
		Currency:      in.Currency,
		Capacity:      in.Capacity,
		Amenities:     in.Amenities,
		Status:        models.BookingStatusAvailable,
	}

	if err := s.writer.Save(ctx, booking); err != nil {
		logger.Log.Errorw("failed to save booking", "userID", userID, "error", err)
		return nil, err
	}
	return booking, nil
}

// Get returns a booking by id.
func (s *BookingService) Get(ctx context.Context, bookingID uuid.UUID) (*models.BookingDB, error) {
	booking, err := s.reader.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		logger.Log.Errorw("failed to get booking", "bookingID", bookingID, "error", err)
		return nil, err
	}
	return booking, nil
}

// List returns the bookings owned by a user.
func (s *BookingService) List(ctx context.Context, userID uuid.UUID) ([]models.BookingDB, error) {
	bookings, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookings", "userID", userID, "error", err)
		return nil, err
	}
	return bookings, nil
}

// Remove withdraws an available booking from the marketplace.
func (s *BookingService) Remove(ctx context.Context, userID, bookingID uuid.UUID) error {
	booking, err := s.reader.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}
	if booking.UserID != userID {
		return ErrAuthorizationDenied
	}

	err = s.writer.UpdateStatus(ctx, bookingID, models.BookingStatusAvailable, models.BookingStatusRemoved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrConflict
		}
		logger.Log.Errorw("failed to remove booking", "bookingID", bookingID, "error", err)
		return err
	}
	return nil
}
