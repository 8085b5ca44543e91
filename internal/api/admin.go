package api

import (
	"net/http" // HTTP status codes

	"hotel_booking/internal/middleware" // Current admin lookup
	"hotel_booking/internal/service"    // Business logic

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListBookingsHandler returns all bookings, newest first (admin only)
func ListBookingsHandler(bookings *service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit := pagination(c)
		list, err := bookings.ListBookings(c.Request.Context(), offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, newBookingsResponse(list))
	}
}

// MeHandler returns the authenticated admin
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentAdmin(c)
		if !ok {
			// AdminOnlyMiddleware should have stopped the request already
			middleware.Unauthorized(c, "Could not validate credentials")
			return
		}
		c.JSON(http.StatusOK, AdminResponse{ID: user.ID, Username: user.Username, CreatedAt: user.CreatedAt})
	}
}
