package api

import (
	"time"

	"hotel_booking/internal/domain"
)

// RoomRequest is the body of POST /rooms
type RoomRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=150"`
	Description   *string `json:"description"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
	Capacity      int     `json:"capacity" binding:"required,gt=0"`
	BedType       *string `json:"bed_type" binding:"omitempty,max=100"`
}

// ImageRequest is the body of POST /rooms/:id/images
type ImageRequest struct {
	ImageURL string  `json:"image_url" binding:"required,max=255"`
	Caption  *string `json:"caption" binding:"omitempty,max=255"`
}

// BookingRequest is the body of POST /bookings
type BookingRequest struct {
	RoomID       uint    `json:"room_id" binding:"required"`
	CheckInDate  string  `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	GuestName    string  `json:"guest_name" binding:"required,min=1,max=150"`
	GuestEmail   *string `json:"guest_email" binding:"omitempty,email,max=150"`
	GuestPhone   *string `json:"guest_phone" binding:"omitempty,max=50"`
	NumAdults    *int    `json:"num_adults" binding:"required,min=0"`
	NumChildren  int     `json:"num_children" binding:"min=0"`
}

// RoomSearchQuery holds the optional filters of GET /rooms
type RoomSearchQuery struct {
	PriceMin     *float64 `form:"price_min"`
	PriceMax     *float64 `form:"price_max"`
	CapacityMin  *int     `form:"capacity_min"`
	BedType      string   `form:"bed_type"`
	CheckInDate  string   `form:"check_in_date" binding:"omitempty,datetime=2006-01-02"`
	CheckOutDate string   `form:"check_out_date" binding:"omitempty,datetime=2006-01-02"`
}

// TokenRequest is the form body of POST /auth/token
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is returned after a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ImageResponse struct {
	ID       uint    `json:"id"`
	RoomID   uint    `json:"room_id"`
	ImageURL string  `json:"image_url"`
	Caption  *string `json:"caption"`
}

type RoomResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	PricePerNight float64         `json:"price_per_night"`
	Capacity      int             `json:"capacity"`
	BedType       *string         `json:"bed_type"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Images        []ImageResponse `json:"images"`
}

type BookingResponse struct {
	ID           uint      `json:"id"`
	RoomID       uint      `json:"room_id"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   *string   `json:"guest_email"`
	GuestPhone   *string   `json:"guest_phone"`
	NumAdults    int       `json:"num_adults"`
	NumChildren  int       `json:"num_children"`
	TotalPrice   *float64  `json:"total_price"`
	BookingDate  time.Time `json:"booking_date"`
}

type BookedDateRangeResponse struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

type AdminResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func newImageResponse(img domain.RoomImage) ImageResponse {
	return ImageResponse{ID: img.ID, RoomID: img.RoomID, ImageURL: img.ImageURL, Caption: img.Caption}
}

func newRoomResponse(r domain.Room) RoomResponse {
	images := make([]ImageResponse, len(r.Images))
	for i, img := range r.Images {
		images[i] = newImageResponse(img)
	}
	return RoomResponse{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		BedType:       r.BedType,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Images:        images,
	}
}

func newBookingResponse(b domain.Booking) BookingResponse {
	stay := b.Range()
	return BookingResponse{
		ID:           b.ID,
		RoomID:       b.RoomID,
		CheckInDate:  stay.CheckIn.Format(domain.DateLayout),
		CheckOutDate: stay.CheckOut.Format(domain.DateLayout),
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		GuestPhone:   b.GuestPhone,
		NumAdults:    b.NumAdults,
		NumChildren:  b.NumChildren,
		TotalPrice:   b.TotalPrice,
		BookingDate:  b.BookingDate,
	}
}

func newBookingsResponse(bookings []domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = newBookingResponse(b)
	}
	return resp
}
