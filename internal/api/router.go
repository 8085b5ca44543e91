package api

import (
	"net/http" // HTTP status codes
	"time"     // CORS max age, clock

	"hotel_booking/internal/middleware" // Request middleware
	"hotel_booking/internal/service"    // Business logic
	"hotel_booking/internal/utils"      // Login throttle

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// Deps are the collaborators the HTTP layer needs
type Deps struct {
	Rooms       *service.RoomService
	Bookings    *service.BookingService
	Auth        *service.AuthService
	Throttle    *utils.LoginThrottle // nil disables throttling
	CORSOrigins []string             // empty disables CORS
	Now         func() time.Time     // nil means time.Now
}

// NewRouter builds the engine with middleware and every route mounted at the
// root and again under /api/v1
func NewRouter(d Deps) *gin.Engine {
	if d.Now == nil {
		d.Now = time.Now
	}

	r := gin.New()
	if len(d.CORSOrigins) > 0 { // cors.New panics on an empty origin list
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Hotel Booking API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerRoutes(&r.RouterGroup, d)
	registerRoutes(r.Group("/api/v1"), d)
	return r
}

func registerRoutes(g *gin.RouterGroup, d Deps) {
	// Public routes
	g.POST("/auth/token", TokenHandler(d.Auth, d.Throttle))
	g.GET("/rooms", ListRoomsHandler(d.Rooms))
	g.GET("/rooms/:room_id", GetRoomHandler(d.Rooms))
	g.GET("/rooms/:room_id/booked-dates", BookedDatesHandler(d.Bookings, d.Now))
	g.POST("/bookings", CreateBookingHandler(d.Bookings))
	g.GET("/bookings/:booking_id", GetBookingHandler(d.Bookings))

	// Admin routes (protected by JWT and an existing admin account)
	admin := g.Group("")
	admin.Use(middleware.JWTAuthMiddleware(d.Auth), middleware.AdminOnlyMiddleware(d.Auth))
	admin.POST("/rooms", CreateRoomHandler(d.Rooms))
	admin.DELETE("/rooms/:room_id", DeleteRoomHandler(d.Rooms))
	admin.POST("/rooms/:room_id/images", AddRoomImageHandler(d.Rooms))
	admin.GET("/admin/bookings", ListBookingsHandler(d.Bookings))
	admin.GET("/admin/me", MeHandler())
}
