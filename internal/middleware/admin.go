package middleware

import (
	"context"
	"net/http" // HTTP status codes

	"hotel_booking/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AdminFinder loads an admin account by username
type AdminFinder interface {
	FindAdmin(ctx context.Context, username string) (*domain.AdminUser, error)
}

const adminKey = "adminUser"

// AdminOnlyMiddleware resolves the token's username to an admin account on each request
func AdminOnlyMiddleware(admins AdminFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username") // Set by JWTAuthMiddleware
		if username == "" {
			Unauthorized(c, "Not authenticated")
			return
		}
		user, err := admins.FindAdmin(c.Request.Context(), username)
		if err != nil {
			if domain.IsNotFound(err) {
				// Token outlived its account
				Unauthorized(c, "Could not validate credentials")
				return
			}
			logrus.WithFields(logrus.Fields{
				"request_id": GetRequestID(c),
				"username":   username,
				"error":      err.Error(),
			}).Error("Admin lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.Set(adminKey, user) // Make the admin available to handlers
		c.Next()
	}
}

// CurrentAdmin returns the admin stored by AdminOnlyMiddleware
func CurrentAdmin(c *gin.Context) (*domain.AdminUser, bool) {
	v, ok := c.Get(adminKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.AdminUser)
	return user, ok
}
