package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotel_booking/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RoomFilter holds the optional search criteria; nil or zero means "not supplied"
type RoomFilter struct {
	PriceMin    *float64
	PriceMax    *float64
	CapacityMin *int
	BedType     string
	CheckIn     *time.Time
	CheckOut    *time.Time
}

// Validate enforces the all-or-nothing availability window and the numeric bounds
func (f RoomFilter) Validate() error {
	if f.PriceMin != nil && *f.PriceMin < 0 {
		return domain.ValidationError{Field: "price_min", Msg: "must be greater than or equal to 0"}
	}
	if f.CapacityMin != nil && *f.CapacityMin < 1 {
		return domain.ValidationError{Field: "capacity_min", Msg: "must be greater than or equal to 1"}
	}
	switch {
	case f.CheckIn == nil && f.CheckOut == nil:
		return nil
	case f.CheckIn == nil || f.CheckOut == nil:
		return domain.ValidationError{Msg: "check_in_date and check_out_date must be supplied together"}
	}
	if !domain.NewDateRange(*f.CheckIn, *f.CheckOut).Valid() {
		return domain.ConflictError{Resource: "dates", Msg: domain.MsgDateOrder}
	}
	return nil
}

// scopes turns each supplied filter into a predicate; GORM ANDs them together
func (f RoomFilter) scopes() []func(*gorm.DB) *gorm.DB {
	var scopes []func(*gorm.DB) *gorm.DB
	if f.PriceMin != nil {
		lo := *f.PriceMin
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("price_per_night >= ?", lo) })
	}
	if f.PriceMax != nil {
		hi := *f.PriceMax
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("price_per_night <= ?", hi) })
	}
	if f.CapacityMin != nil {
		capacity := *f.CapacityMin
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("capacity >= ?", capacity) })
	}
	if bed := strings.TrimSpace(f.BedType); bed != "" {
		pattern := "%" + escapeLike(strings.ToLower(bed)) + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(bed_type) LIKE ? ESCAPE '!'", pattern)
		})
	}
	if f.CheckIn != nil && f.CheckOut != nil {
		stay := domain.NewDateRange(*f.CheckIn, *f.CheckOut)
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			booked := db.Session(&gorm.Session{NewDB: true}).
				Model(&domain.Booking{}).
				Distinct("room_id").
				Scopes(overlapping(stay))
			return db.Where("id NOT IN (?)", booked)
		})
	}
	return scopes
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// RoomInput is the data needed to create a room
type RoomInput struct {
	Name          string
	Description   *string
	PricePerNight float64
	Capacity      int
	BedType       *string
}

// ImageInput is the data needed to attach an image to a room
type ImageInput struct {
	ImageURL string
	Caption  *string
}

// RoomService owns the room catalogue and the search engine
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// SearchRooms returns rooms matching every supplied filter, ordered by id, with images.
// offset and limit are applied as given.
func (s *RoomService) SearchRooms(ctx context.Context, f RoomFilter, offset, limit int) ([]domain.Room, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	var rooms []domain.Room
	if err := s.DB.WithContext(ctx).
		Model(&domain.Room{}).
		Scopes(f.scopes()...).
		Preload("Images", orderImages).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&rooms).Error; err != nil {
		return nil, domain.InternalError{Msg: "Failed to fetch rooms", Err: err}
	}
	return rooms, nil
}

// GetRoom loads one room with its images
func (s *RoomService) GetRoom(ctx context.Context, id uint) (*domain.Room, error) {
	var room domain.Room
	if err := s.DB.WithContext(ctx).Preload("Images", orderImages).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "Room", Err: err}
		}
		return nil, domain.InternalError{Msg: "Failed to fetch room", Err: err}
	}
	return &room, nil
}

// CreateRoom stores a new room; it starts without images
func (s *RoomService) CreateRoom(ctx context.Context, in RoomInput) (*domain.Room, error) {
	if in.PricePerNight <= 0 {
		return nil, domain.ValidationError{Field: "price_per_night", Msg: "must be greater than 0"}
	}
	if in.Capacity <= 0 {
		return nil, domain.ValidationError{Field: "capacity", Msg: "must be greater than 0"}
	}
	room := domain.Room{
		Name:          in.Name,
		Description:   in.Description,
		PricePerNight: in.PricePerNight,
		Capacity:      in.Capacity,
		BedType:       in.BedType,
		Images:        []domain.RoomImage{},
	}
	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		logrus.WithFields(logrus.Fields{"name": in.Name, "error": err.Error()}).Error("Failed to create room")
		return nil, domain.InternalError{Msg: "Failed to create room", Err: err}
	}
	logrus.WithFields(logrus.Fields{"room_id": room.ID, "name": room.Name}).Info("Room created")
	return &room, nil
}

// AddRoomImage attaches an image to an existing room
func (s *RoomService) AddRoomImage(ctx context.Context, roomID uint, in ImageInput) (*domain.RoomImage, error) {
	db := s.DB.WithContext(ctx)
	if err := roomExists(db, roomID); err != nil {
		return nil, err
	}
	image := domain.RoomImage{RoomID: roomID, ImageURL: in.ImageURL, Caption: in.Caption}
	if err := db.Create(&image).Error; err != nil {
		logrus.WithFields(logrus.Fields{"room_id": roomID, "error": err.Error()}).Error("Failed to add room image")
		return nil, domain.InternalError{Msg: "Failed to add image", Err: err}
	}
	return &image, nil
}

// DeleteRoom removes a room and its images. Rooms that still have bookings are kept.
func (s *RoomService) DeleteRoom(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := roomExists(tx, id); err != nil {
			return err
		}
		var bookings int64
		if err := tx.Model(&domain.Booking{}).Where("room_id = ?", id).Count(&bookings).Error; err != nil {
			return err
		}
		if bookings > 0 {
			return domain.ConflictError{Resource: "room", Msg: "Room has bookings and cannot be deleted"}
		}
		// The foreign key cascades too; deleting here covers stores without FK enforcement
		if err := tx.Where("room_id = ?", id).Delete(&domain.RoomImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Room{}, id).Error
	})
	if err != nil {
		if isDomainError(err) {
			return err
		}
		logrus.WithFields(logrus.Fields{"room_id": id, "error": err.Error()}).Error("Failed to delete room")
		return domain.InternalError{Msg: "Failed to delete room", Err: err}
	}
	logrus.WithField("room_id", id).Info("Room deleted")
	return nil
}

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
