package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Booking Model
type Booking struct {
	ID     uint `gorm:"primaryKey"`
	RoomID uint `gorm:"not null;index:idx_bookings_room_id_dates,priority:1"`

	// Stay dates, check-out day is not a night
	CheckInDate  datatypes.Date `gorm:"not null;index:idx_bookings_room_id_dates,priority:2;index:idx_bookings_dates,priority:1"`
	CheckOutDate datatypes.Date `gorm:"not null;index:idx_bookings_room_id_dates,priority:3;index:idx_bookings_dates,priority:2;check:chk_booking_dates,check_out_date > check_in_date"`

	// The guest-total check spans two columns and hangs off guest_name
	GuestName  string  `gorm:"size:150;not null;check:chk_booking_guests_total,num_adults + num_children > 0"`
	GuestEmail *string `gorm:"size:150"`
	GuestPhone *string `gorm:"size:50"`

	NumAdults   int       `gorm:"not null;check:chk_booking_adults,num_adults >= 0"`
	NumChildren int       `gorm:"not null;default:0;check:chk_booking_children,num_children >= 0"`
	TotalPrice  *float64  `gorm:"type:decimal(12,2)"` // Computed on creation
	BookingDate time.Time `gorm:"autoCreateTime"`     // Server-assigned creation time
}

// Guests returns the total number of people on the booking
func (b Booking) Guests() int {
	return b.NumAdults + b.NumChildren
}

// Range returns the stay as a half-open date range
func (b Booking) Range() DateRange {
	return DateRange{CheckIn: time.Time(b.CheckInDate), CheckOut: time.Time(b.CheckOutDate)}
}
