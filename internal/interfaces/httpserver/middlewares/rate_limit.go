package middlewares

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"convert-api/internal/infrastructure/metrics"
	"convert-api/internal/infrastructure/ratelimit"
	"convert-api/internal/interfaces/httpserver/responses"
)

// RateLimitMiddleware charges one unit of the per-IP quota before the
// conversion runs. Rejections answer 429 with the reset time; allowed
// requests get the X-RateLimit-* headers set for the handler's response.
func RateLimitMiddleware(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := limiter.Check(ClientIP(c.Request))

		c.Writer.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Writer.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			metrics.RateLimitedTotal.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				responses.RateLimited(decision.Remaining, decision.ResetTime))
			return
		}

		c.Next()
	}
}
