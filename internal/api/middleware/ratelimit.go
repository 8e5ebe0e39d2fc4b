package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/partyqr/qr-router/internal/api/shared/errors"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/ratelimit"
)

// ScanRateLimit limits requests per client IP. A nil limiter disables the check.
func ScanRateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		decision := limiter.Allow(c.Request.Context(), c.ClientIP())
		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(retryAfter, 1)))
			logger.WarnCtx(c.Request.Context(), "Scan rate limited",
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierrors.NewRateLimitedError("Too many requests"))
			return
		}

		c.Next()
	}
}
