package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// LoginRateLimit throttles login attempts per client IP over a fixed redis
// window. Redis being unavailable fails open: the lockout state machine is
// the actual brute-force control.
func LoginRateLimit(cache *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())
		count, err := cache.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			cache.Expire(c.Request.Context(), key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "too many login attempts, slow down",
			})
			return
		}

		c.Next()
	}
}
