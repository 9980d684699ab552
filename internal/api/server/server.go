package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger/internal/api/middleware"
	"github.com/feral-file/ff-ledger/internal/api/rest"
	"github.com/feral-file/ff-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-ledger/internal/ledger"
	"github.com/feral-file/ff-ledger/internal/logger"
	"github.com/feral-file/ff-ledger/internal/ratelimit"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Services holds the ledger services the API exposes
type Services struct {
	Transactions ledger.TransactionService
	Blocks       ledger.BlockService
	Wallets      ledger.WalletLedger
	Tokens       ledger.TokenRegistry
	Maintenance  ledger.MaintenanceService
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	services   Services
	limiter    ratelimit.Limiter
	httpServer *http.Server
}

// New creates a new API server. A nil limiter disables rate limiting.
func New(cfg Config, services Services, limiter ratelimit.Limiter) *Server {
	return &Server{
		config:   cfg,
		services: services,
		limiter:  limiter,
	}
}

// Handler builds the gin engine with middleware and routes
func (s *Server) Handler() http.Handler {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	exec := executor.NewExecutor(
		s.services.Transactions,
		s.services.Blocks,
		s.services.Wallets,
		s.services.Tokens,
		s.services.Maintenance,
	)

	apiMiddleware := []gin.HandlerFunc{middleware.Maintenance(s.services.Maintenance)}
	if s.limiter != nil {
		apiMiddleware = append([]gin.HandlerFunc{middleware.RateLimit(s.limiter)}, apiMiddleware...)
	}

	rest.SetupRoutes(router, rest.NewHandler(exec), s.config.Auth, apiMiddleware...)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.Bool("rate_limited", s.limiter != nil),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server and releases the rate limiter
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	if s.limiter != nil {
		if err := s.limiter.Close(); err != nil {
			return fmt.Errorf("failed to close rate limiter: %w", err)
		}
	}

	return nil
}
