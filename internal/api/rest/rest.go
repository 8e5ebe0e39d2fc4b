package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/partyqr/qr-router/internal/api/middleware"
	"github.com/partyqr/qr-router/internal/ratelimit"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, scanLimiter ratelimit.Limiter) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Scan redirects (public, rate limited per client IP)
	router.GET("/qr/:code", middleware.ScanRateLimit(scanLimiter), handler.Redirect)

	// QR owner edits
	auth := middleware.Auth(authCfg)
	router.POST("/qr/:code", auth, handler.UpdateQR)
	router.DELETE("/qr/:code", auth, handler.DeleteQR)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Payment provider webhook (signature verified in the handler)
		v1.POST("/webhooks/payments", handler.PaymentWebhook)

		events := v1.Group("/events/:eventId", auth)
		{
			events.GET("/status", handler.EventStatus)
			events.POST("/quick-start", handler.QuickStart)
			events.PATCH("/destinations/:destinationId", handler.UpdateDestination)
			events.DELETE("/destinations/:destinationId", handler.DeleteDestination)
		}
	}
}
