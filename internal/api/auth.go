package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Retry-After formatting

	"hotel_booking/internal/middleware" // Auth helpers
	"hotel_booking/internal/service"    // Business logic
	"hotel_booking/internal/utils"      // Login throttle

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// TokenHandler exchanges admin credentials for a bearer token
func TokenHandler(auth *service.AuthService, throttle *utils.LoginThrottle) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest // Bind form fields to struct
		if err := c.ShouldBind(&req); err != nil {
			respondInvalid(c, err)
			return
		}
		ctx := c.Request.Context()

		// Refuse early while the username is locked out
		blocked, retry, err := throttle.Blocked(ctx, req.Username)
		if err != nil {
			// Redis trouble must not lock admins out
			logrus.WithError(err).Warn("login throttle unavailable")
		}
		if blocked {
			c.Header("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed login attempts, try again later"})
			return
		}

		user, err := auth.VerifyCredentials(ctx, req.Username, req.Password)
		if err != nil {
			if ferr := throttle.Fail(ctx, req.Username); ferr != nil {
				logrus.WithError(ferr).Warn("failed to record login failure")
			}
			logrus.WithFields(logrus.Fields{
				"request_id": middleware.GetRequestID(c),
				"username":   req.Username,
			}).Warn("admin login rejected")
			respondError(c, err)
			return
		}
		if err := throttle.Reset(ctx, req.Username); err != nil {
			logrus.WithError(err).Warn("failed to reset login throttle")
		}

		token, err := auth.IssueToken(user) // Generate JWT token
		if err != nil {
			logrus.WithError(err).Error("failed to sign access token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}
