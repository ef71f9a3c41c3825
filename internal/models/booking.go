package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Booking types supported by the marketplace.
const (
	BookingTypeHotel          = "hotel"
	BookingTypeVacationRental = "vacation_rental"
	BookingTypeResort         = "resort"
	BookingTypeHostel         = "hostel"
	BookingTypeBnb            = "bnb"
	BookingTypeEvent          = "event"
	BookingTypeConcert        = "concert"
	BookingTypeSports         = "sports"
	BookingTypeTheater        = "theater"
	BookingTypeFlight         = "flight"
	BookingTypeRental         = "rental"
)

// Booking statuses.
const (
	BookingStatusAvailable = "available"
	BookingStatusSwapped   = "swapped"
	BookingStatusRemoved   = "removed"
)

// ValidBookingTypes maps every accepted booking type for quick membership checks.
var ValidBookingTypes = map[string]struct{}{
	BookingTypeHotel: {}, BookingTypeVacationRental: {}, BookingTypeResort: {},
	BookingTypeHostel: {}, BookingTypeBnb: {}, BookingTypeEvent: {},
	BookingTypeConcert: {}, BookingTypeSports: {}, BookingTypeTheater: {},
	BookingTypeFlight: {}, BookingTypeRental: {},
}

// StringList is a JSON-encoded list of strings stored in a single text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// BookingDB represents a booking row in the database
type BookingDB struct {
	BookingID     uuid.UUID  `json:"booking_id" db:"booking_id"`         // Unique booking identifier
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`               // Owner of the booking
	Title         string     `json:"title" db:"title"`                   // Short human-readable title
	Description   string     `json:"description" db:"description"`       // Free-text description
	Type          string     `json:"type" db:"type"`                     // One of the BookingType constants
	City          string     `json:"city" db:"city"`                     // Location city
	Country       string     `json:"country" db:"country"`               // Location country
	CheckIn       *time.Time `json:"check_in,omitempty" db:"check_in"`   // Stay start (stay-type bookings)
	CheckOut      *time.Time `json:"check_out,omitempty" db:"check_out"` // Stay end (stay-type bookings)
	EventDate     *time.Time `json:"event_date,omitempty" db:"event_date"` // Event date (event-type bookings)
	OriginalPrice float64    `json:"original_price" db:"original_price"` // Price originally paid
	SwapValue     float64    `json:"swap_value" db:"swap_value"`         // Value the owner assigns for swapping
	Currency      string     `json:"currency" db:"currency"`             // ISO currency code
	Capacity      int        `json:"capacity" db:"capacity"`             // Number of guests/seats
	Amenities     StringList `json:"amenities" db:"amenities"`           // Amenity labels
	Status        string     `json:"status" db:"status"`                 // available, swapped or removed
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// StartDate returns the date the booked item is consumed: the event date for
// event-type bookings, otherwise the check-in date. Nil when neither is set.
func (b *BookingDB) StartDate() *time.Time {
	if b.EventDate != nil {
		return b.EventDate
	}
	return b.CheckIn
}
