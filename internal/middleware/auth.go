package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brandhub/api/internal/security"
	"brandhub/api/internal/service"
)

const adminContextKey = "current_admin"

// Auth guards protected routes: it extracts the bearer token, runs the auth
// service's verification path, and stores the live account on the context.
func Auth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "access token required")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		admin, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingToken):
				abortUnauthorized(c, "access token required")
			case errors.Is(err, security.ErrTokenExpired):
				abortUnauthorized(c, "token expired")
			case errors.Is(err, security.ErrTokenInvalid):
				abortUnauthorized(c, "invalid token or inactive account")
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "internal server error",
				})
			}
			return
		}

		c.Set(adminContextKey, admin)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
