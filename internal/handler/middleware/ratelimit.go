package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Limit() int
}

var (
	errRateLimited        = errs.New("rate limit exceeded")
	errLimiterUnavailable = errs.New("rate limiter unavailable")
)

// RateLimit throttles per verified identity, falling back to the client IP.
// A nil limiter disables throttling.
func RateLimit(limiter Limiter, failOpen bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if id, ok := GetIdentity(c); ok && id.Subject != "" {
			key = "sub:" + id.Subject
		}

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter error", "error", err.Error())
			if failOpen {
				c.Next()
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, errs.Mark(err, errLimiterUnavailable), "Rate limiter unavailable", nil)
			return
		}
		if !allowed {
			c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
