package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/partyqr/qr-router/internal/api/middleware"
	"github.com/partyqr/qr-router/internal/mocks"
	"github.com/partyqr/qr-router/internal/ratelimit"
)

func rateLimitedEngine(limiter ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/qr/:code", middleware.ScanRateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusFound)
	})
	return engine
}

func TestScanRateLimit(t *testing.T) {
	t.Run("keyed by client ip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), "192.0.2.10").Return(ratelimit.Decision{Allowed: true, Remaining: 5})

		req := httptest.NewRequest(http.MethodGet, "/qr/abc", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		w := httptest.NewRecorder()
		rateLimitedEngine(limiter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Decision{Allowed: false})

		w := httptest.NewRecorder()
		rateLimitedEngine(limiter).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/qr/abc", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("nil limiter allows", func(t *testing.T) {
		w := httptest.NewRecorder()
		rateLimitedEngine(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/qr/abc", nil))

		assert.Equal(t, http.StatusFound, w.Code)
	})
}
