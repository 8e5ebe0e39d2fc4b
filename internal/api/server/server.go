package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/api/middleware"
	"github.com/partyqr/qr-router/internal/api/rest"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/ratelimit"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	Auth           middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config      Config
	handler     rest.Handler
	scanLimiter ratelimit.Limiter
	httpServer  *http.Server
}

// New creates a new API server
func New(cfg Config, handler rest.Handler, scanLimiter ratelimit.Limiter) *Server {
	return &Server{
		config:      cfg,
		handler:     handler,
		scanLimiter: scanLimiter,
	}
}

// NewRouter builds the gin engine with middleware and routes
func NewRouter(cfg Config, handler rest.Handler, scanLimiter ratelimit.Limiter) *gin.Engine {
	// Set Gin mode based on debug flag
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(cfg.AllowedOrigins))

	rest.SetupRoutes(router, handler, cfg.Auth, scanLimiter)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      NewRouter(s.config, s.handler, s.scanLimiter),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
