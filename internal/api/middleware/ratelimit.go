package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"truckops-backend/pkg/ratelimit"
	"truckops-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RateLimit applies the limiter per client IP and answers 429 with a
// Retry-After header when the bucket is empty.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := limiter.Allow(c.ClientIP())
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Rate limit exceeded",
				fmt.Errorf("too many requests, try again in %s", retryAfter.Round(time.Millisecond)))
			c.Abort()
			return
		}

		c.Next()
	}
}
