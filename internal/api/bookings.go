package api

import (
	"net/http" // HTTP status codes

	"hotel_booking/internal/domain"  // Domain models
	"hotel_booking/internal/service" // Business logic

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateBookingHandler reserves a room for the requested stay
func CreateBookingHandler(bookings *service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookingRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalid(c, err)
			return
		}
		checkIn, _ := domain.ParseDate(req.CheckInDate)   // Format checked by binding
		checkOut, _ := domain.ParseDate(req.CheckOutDate) // Format checked by binding
		if !domain.NewDateRange(checkIn, checkOut).Valid() {
			c.JSON(http.StatusConflict, gin.H{"error": domain.MsgDateOrder})
			return
		}

		booking, err := bookings.CreateBooking(c.Request.Context(), service.BookingInput{
			RoomID:      req.RoomID,
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			GuestName:   req.GuestName,
			GuestEmail:  req.GuestEmail,
			GuestPhone:  req.GuestPhone,
			NumAdults:   *req.NumAdults,
			NumChildren: req.NumChildren,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, newBookingResponse(*booking))
	}
}

// GetBookingHandler returns one booking by id
func GetBookingHandler(bookings *service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "booking_id")
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid booking id"})
			return
		}
		booking, err := bookings.GetBooking(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, newBookingResponse(*booking))
	}
}
