package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"parking-reservation/internal/handler/httperr"
	"parking-reservation/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

// KeyFunc names the bucket a request is counted against. An empty key skips
// limiting for that request.
type KeyFunc func(c *gin.Context) string

func ByClientIP(scope string) KeyFunc {
	return func(c *gin.Context) string {
		return scope + ":ip:" + c.ClientIP()
	}
}

// ByUser must run after RequireAuth.
func ByUser(scope string) KeyFunc {
	return func(c *gin.Context) string {
		id, ok := GetUserID(c)
		if !ok {
			return ""
		}
		return scope + ":user:" + strconv.FormatInt(id, 10)
	}
}

// RateLimit fails open when the limiter backend errors. It never calls
// c.Next, so it can run inline as route-level middleware.
func RateLimit(limiter ratelimit.Limiter, key KeyFunc, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if k == "" || limit <= 0 {
			return
		}

		d, err := limiter.Allow(c.Request.Context(), k, limit, window)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "key", k, "error", err.Error())
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			retry := int(math.Ceil(d.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retry))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests", gin.H{"retry_after_seconds": retry})
		}
	}
}
