package api

import (
	"errors"
	"net/http"

	"hotel_booking/internal/domain"
	"hotel_booking/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps domain errors to status codes; internal causes are logged, never returned
func respondError(c *gin.Context, err error) {
	var internal domain.InternalError
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		middleware.Unauthorized(c, "Incorrect username or password")
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case domain.IsCapacity(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		msg := "Internal server error"
		if errors.As(err, &internal) && internal.Msg != "" {
			msg = internal.Msg
		}
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"path":       c.Request.URL.Path,
			"error":      errorCause(err),
		}).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// respondInvalid answers a request that failed binding or parsing
func respondInvalid(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request", "details": err.Error()})
}

func errorCause(err error) string {
	if cause := errors.Unwrap(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}
