package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandhub/api/internal/models"
	"brandhub/api/internal/service"
)

// RequireCapability gates a route on an authorization level. Must run after
// Auth.
func RequireCapability(capability service.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := CurrentAdmin(c)
		if !ok {
			abortUnauthorized(c, "unauthorized")
			return
		}

		if err := service.Authorize(admin, capability); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "insufficient permissions",
			})
			return
		}

		c.Next()
	}
}

// CurrentAdmin returns the account stored by Auth.
func CurrentAdmin(c *gin.Context) (models.Admin, bool) {
	value, exists := c.Get(adminContextKey)
	if !exists {
		return models.Admin{}, false
	}
	admin, ok := value.(models.Admin)
	return admin, ok
}
