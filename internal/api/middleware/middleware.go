package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/partyqr/qr-router/internal/api/shared/errors"
	"github.com/partyqr/qr-router/internal/logger"
)

const (
	RequestIDHeader = "X-Request-ID"

	REQUEST_ID_KEY contextKey = "request_id"
)

// RequestID reuses the caller's request id or assigns a new one, and echoes it back
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(string(REQUEST_ID_KEY), id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger logs one entry per request keyed by the route template, so scan paths
// do not fan out per code. Successful scans log at debug level.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(string(REQUEST_ID_KEY))),
		}
		if code := c.Param("code"); code != "" {
			fields = append(fields, logger.QRCode(code))
		}

		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			logger.FromContext(ctx).Error("API request failed", fields...)
		case status >= http.StatusBadRequest:
			logger.WarnCtx(ctx, "API request rejected", fields...)
		case status == http.StatusFound:
			logger.DebugCtx(ctx, "Scan redirected", fields...)
		default:
			logger.InfoCtx(ctx, "API request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 envelope
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("route", c.FullPath()),
					zap.String("request_id", c.GetString(string(REQUEST_ID_KEY))),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					apierrors.NewInternalError("Internal server error"))
			}
		}()
		c.Next()
	}
}
