package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stayswap/stayswap/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockBookingReader(ctrl)
	writer := NewMockBookingWriter(ctrl)
	svc := NewBookingService(reader, writer)

	// 1. Unknown type
	_, err := svc.Create(ctx, userID, NewBookingInput{Type: "cruise"})
	assert.Equal(t, ErrInvalidBookingType, err)

	// 2. A booking without any usable date is rejected
	_, err = svc.Create(ctx, userID, NewBookingInput{Type: models.BookingTypeHotel})
	assert.Equal(t, ErrInvalidBookingDate, err)

	// 3. Successful creation starts available
	checkIn := time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(72 * time.Hour)
	writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *models.BookingDB) error {
		assert.Equal(t, models.BookingStatusAvailable, b.Status)
		assert.Equal(t, userID, b.UserID)
		return nil
	})

	booking, err := svc.Create(ctx, userID, NewBookingInput{
		Title: "Barcelona apartment", Type: models.BookingTypeVacationRental,
		City: "Barcelona", Country: "ES",
		CheckIn: &checkIn, CheckOut: &checkOut,
		OriginalPrice: 900, SwapValue: 800, Currency: "EUR", Capacity: 4,
		Amenities: []string{"wifi", "pool"},
	})
	assert.NoError(t, err)
	assert.Equal(t, checkIn, *booking.StartDate())
}

func TestBookingService_Remove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockBookingReader(ctrl)
	writer := NewMockBookingWriter(ctrl)
	svc := NewBookingService(reader, writer)

	// 1. Missing booking
	reader.EXPECT().GetByID(ctx, bookingID).Return(nil, sql.ErrNoRows)
	err := svc.Remove(ctx, userID, bookingID)
	assert.Equal(t, ErrBookingNotFound, err)

	// 2. Only the owner removes
	reader.EXPECT().GetByID(ctx, bookingID).Return(&models.BookingDB{
		BookingID: bookingID, UserID: uuid.New(), Status: models.BookingStatusAvailable,
	}, nil)
	err = svc.Remove(ctx, userID, bookingID)
	assert.Equal(t, ErrAuthorizationDenied, err)

	// 3. A booking already swapped cannot be removed
	reader.EXPECT().GetByID(ctx, bookingID).Return(&models.BookingDB{
		BookingID: bookingID, UserID: userID, Status: models.BookingStatusSwapped,
	}, nil)
	writer.EXPECT().UpdateStatus(ctx, bookingID, models.BookingStatusAvailable, models.BookingStatusRemoved).
		Return(sql.ErrNoRows)
	err = svc.Remove(ctx, userID, bookingID)
	assert.Equal(t, ErrConflict, err)

	// 4. Success
	reader.EXPECT().GetByID(ctx, bookingID).Return(&models.BookingDB{
		BookingID: bookingID, UserID: userID, Status: models.BookingStatusAvailable,
	}, nil)
	writer.EXPECT().UpdateStatus(ctx, bookingID, models.BookingStatusAvailable, models.BookingStatusRemoved).
		Return(nil)
	err = svc.Remove(ctx, userID, bookingID)
	assert.NoError(t, err)
}
