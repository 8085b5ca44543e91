package api

import (
	"net/http" // HTTP status codes
	"time"     // Clock for booked-date lookups

	"hotel_booking/internal/domain"  // Domain models
	"hotel_booking/internal/service" // Business logic

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListRoomsHandler searches rooms by price, capacity, bed type and availability
func ListRoomsHandler(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q RoomSearchQuery // Bind query string to struct
		if err := c.ShouldBindQuery(&q); err != nil {
			respondInvalid(c, err)
			return
		}
		filter := service.RoomFilter{
			PriceMin:    q.PriceMin,
			PriceMax:    q.PriceMax,
			CapacityMin: q.CapacityMin,
			BedType:     q.BedType,
		}
		// Dates already passed the datetime check, so parsing cannot fail here
		if q.CheckInDate != "" {
			d, _ := domain.ParseDate(q.CheckInDate)
			filter.CheckIn = &d
		}
		if q.CheckOutDate != "" {
			d, _ := domain.ParseDate(q.CheckOutDate)
			filter.CheckOut = &d
		}

		offset, limit := pagination(c)
		found, err := rooms.SearchRooms(c.Request.Context(), filter, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		resp := make([]RoomResponse, len(found))
		for i, r := range found {
			resp[i] = newRoomResponse(r)
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetRoomHandler returns one room with its images
func GetRoomHandler(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "room_id")
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid room id"})
			return
		}
		room, err := rooms.GetRoom(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, newRoomResponse(*room))
	}
}

// CreateRoomHandler adds a room to the catalogue (admin only)
func CreateRoomHandler(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalid(c, err)
			return
		}
		room, err := rooms.CreateRoom(c.Request.Context(), service.RoomInput{
			Name:          req.Name,
			Description:   req.Description,
			PricePerNight: req.PricePerNight,
			Capacity:      req.Capacity,
			BedType:       req.BedType,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, newRoomResponse(*room))
	}
}

// DeleteRoomHandler removes a room that has no bookings (admin only)
func DeleteRoomHandler(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "room_id")
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid room id"})
			return
		}
		if err := rooms.DeleteRoom(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// AddRoomImageHandler attaches an image URL to a room (admin only)
func AddRoomImageHandler(rooms *service.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "room_id")
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid room id"})
			return
		}
		var req ImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalid(c, err)
			return
		}
		img, err := rooms.AddRoomImage(c.Request.Context(), id, service.ImageInput{ImageURL: req.ImageURL, Caption: req.Caption})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, newImageResponse(*img))
	}
}

// BookedDatesHandler lists the current and future booked ranges of a room
func BookedDatesHandler(bookings *service.BookingService, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "room_id")
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid room id"})
			return
		}
		ranges, err := bookings.ListBookedDateRanges(c.Request.Context(), id, domain.Day(now()))
		if err != nil {
			respondError(c, err)
			return
		}
		resp := make([]BookedDateRangeResponse, len(ranges))
		for i, r := range ranges {
			resp[i] = BookedDateRangeResponse{
				CheckInDate:  r.CheckIn.Format(domain.DateLayout),
				CheckOutDate: r.CheckOut.Format(domain.DateLayout),
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}
