package domain

import "time"

// Room Model
type Room struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:150;not null"`
	Description   *string `gorm:"type:text"`
	PricePerNight float64 `gorm:"type:decimal(10,2);not null;index:idx_rooms_price;check:chk_room_price,price_per_night > 0"`
	Capacity      int     `gorm:"not null;index:idx_rooms_capacity;check:chk_room_capacity,capacity > 0"`
	BedType       *string `gorm:"size:100"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Images   []RoomImage `gorm:"constraint:OnDelete:CASCADE;"`  // Owned images, removed with the room
	Bookings []Booking   `gorm:"constraint:OnDelete:RESTRICT;"` // Bookings block room deletion
}

// RoomImage Model
type RoomImage struct {
	ID       uint    `gorm:"primaryKey"`        // Primary key
	RoomID   uint    `gorm:"not null;index"`    // Foreign key to Room
	ImageURL string  `gorm:"size:255;not null"` // Image location
	Caption  *string `gorm:"size:255"`          // Optional caption
}
