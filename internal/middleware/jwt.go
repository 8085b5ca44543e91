package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// TokenResolver maps a bearer token to the username it was issued for
type TokenResolver interface {
	ResolveToken(token string) (string, error)
}

// Unauthorized aborts with 401 and the bearer challenge header
func Unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// JWTAuthMiddleware validates bearer tokens and stores the username in the context
func JWTAuthMiddleware(tokens TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		scheme, tokenStr, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenStr) == "" {
			Unauthorized(c, "Not authenticated")
			return
		}
		username, err := tokens.ResolveToken(strings.TrimSpace(tokenStr))
		if err != nil {
			// If parsing fails, abort with unauthorized status
			Unauthorized(c, "Could not validate credentials")
			return
		}
		c.Set("username", username) // Store username in context
		c.Next()                    // Proceed to the next handler
	}
}
