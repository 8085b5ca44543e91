package service

import (
	"context"
	"errors"
	"time"

	"hotel_booking/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingInput is a request to reserve one room for a date range
type BookingInput struct {
	RoomID      uint
	CheckIn     time.Time
	CheckOut    time.Time
	GuestName   string
	GuestEmail  *string
	GuestPhone  *string
	NumAdults   int
	NumChildren int
}

// BookingService owns availability checks and booking creation
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBooking checks the room, capacity and date overlap, then stores the booking
// with its computed price. The room row is locked for the whole transaction so two
// requests for the same room cannot both pass the overlap check.
func (s *BookingService) CreateBooking(ctx context.Context, in BookingInput) (*domain.Booking, error) {
	stay := domain.NewDateRange(in.CheckIn, in.CheckOut)
	if !stay.Valid() {
		return nil, domain.ValidationError{Field: "check_out_date", Msg: domain.MsgDateOrder}
	}
	if in.NumAdults < 0 || in.NumChildren < 0 {
		return nil, domain.ValidationError{Msg: "guest counts must not be negative"}
	}
	if in.NumAdults+in.NumChildren == 0 {
		return nil, domain.ValidationError{Msg: "at least one guest is required"}
	}

	var booking *domain.Booking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFoundError{Resource: "Room", Err: err}
			}
			return err
		}

		if guests := in.NumAdults + in.NumChildren; guests > room.Capacity {
			return domain.CapacityError{Guests: guests, Capacity: room.Capacity}
		}

		var conflicts int64
		if err := tx.Model(&domain.Booking{}).
			Scopes(roomBookedDuring(in.RoomID, stay)).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			return domain.ConflictError{Resource: "booking", Msg: domain.MsgRoomUnavailable}
		}

		total := room.PricePerNight * float64(stay.Nights())
		checkIn, checkOut := stay.Dates()
		b := domain.Booking{
			RoomID:       room.ID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			GuestName:    in.GuestName,
			GuestEmail:   in.GuestEmail,
			GuestPhone:   in.GuestPhone,
			NumAdults:    in.NumAdults,
			NumChildren:  in.NumChildren,
			TotalPrice:   &total,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		booking = &b
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"room_id":   in.RoomID,
			"check_in":  stay.CheckIn.Format(domain.DateLayout),
			"check_out": stay.CheckOut.Format(domain.DateLayout),
			"error":     err.Error(),
		}).Error("Booking creation failed")
		return nil, domain.InternalError{Msg: "Could not create booking due to an internal error.", Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"booking_id":  booking.ID,
		"room_id":     booking.RoomID,
		"nights":      stay.Nights(),
		"total_price": *booking.TotalPrice,
	}).Info("Booking created")
	return booking, nil
}

// GetBooking loads one booking by id
func (s *BookingService) GetBooking(ctx context.Context, id uint) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.DB.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "Booking", Err: err}
		}
		return nil, domain.InternalError{Msg: "Failed to fetch booking", Err: err}
	}
	return &b, nil
}

// ListBookings returns bookings newest first
func (s *BookingService) ListBookings(ctx context.Context, offset, limit int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := s.DB.WithContext(ctx).
		Order("booking_date desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, domain.InternalError{Msg: "Failed to fetch bookings", Err: err}
	}
	return bookings, nil
}

// ListBookedDateRanges returns the stays of a room that end today or later
func (s *BookingService) ListBookedDateRanges(ctx context.Context, roomID uint, today time.Time) ([]domain.DateRange, error) {
	db := s.DB.WithContext(ctx)
	if err := roomExists(db, roomID); err != nil {
		return nil, err
	}

	var bookings []domain.Booking
	if err := db.Select("check_in_date", "check_out_date").
		Where("room_id = ?", roomID).
		Where("check_out_date >= ?", datatypes.Date(domain.Day(today))).
		Order("check_in_date").
		Find(&bookings).Error; err != nil {
		return nil, domain.InternalError{Msg: "Failed to fetch booked dates", Err: err}
	}

	ranges := make([]domain.DateRange, len(bookings))
	for i, b := range bookings {
		ranges[i] = b.Range()
	}
	return ranges, nil
}

// roomBookedDuring matches bookings of a room whose stay overlaps the given range
func roomBookedDuring(roomID uint, stay domain.DateRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("room_id = ?", roomID).Scopes(overlapping(stay))
	}
}

// overlapping is the SQL form of DateRange.Overlaps: existing.in < out AND existing.out > in
func overlapping(stay domain.DateRange) func(*gorm.DB) *gorm.DB {
	checkIn, checkOut := stay.Dates()
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	}
}

func roomExists(db *gorm.DB, roomID uint) error {
	var count int64
	if err := db.Model(&domain.Room{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
		return domain.InternalError{Msg: "Failed to fetch room", Err: err}
	}
	if count == 0 {
		return domain.NotFoundError{Resource: "Room"}
	}
	return nil
}

func isDomainError(err error) bool {
	return domain.IsNotFound(err) || domain.IsValidation(err) || domain.IsCapacity(err) ||
		domain.IsConflict(err) || domain.IsInternal(err)
}
