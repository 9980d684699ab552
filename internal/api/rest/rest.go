package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feral-file/ff-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes.
// apiMiddleware runs on /api/v1 only; /admin, /health and /metrics stay reachable during maintenance.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, apiMiddleware ...gin.HandlerFunc) {
	// Health check and metrics endpoints (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1", apiMiddleware...)
	{
		// Transaction endpoints
		v1.POST("/transactions", handler.CreateTransaction)
		v1.GET("/transactions", handler.ListTransactions)
		v1.GET("/transactions/:hash", handler.GetTransaction)
		v1.DELETE("/transactions/:id", handler.DeleteTransaction)

		// Block endpoints
		v1.POST("/blocks", handler.CreateBlock)
		v1.GET("/blocks", handler.ListBlocks)
		v1.GET("/blocks/:number", handler.GetBlock)
		v1.DELETE("/blocks/:number", handler.DeleteBlock)

		// Wallet endpoints
		v1.GET("/wallets", handler.ListWallets)
		v1.GET("/wallets/:address/:token_address", handler.GetWallet)

		// Fungible token endpoints
		v1.GET("/fts", handler.ListFungibleTokens)
		v1.GET("/fts/:address", handler.GetFungibleToken)
	}

	// Admin routes (requires authentication)
	admin := router.Group("/admin", middleware.Auth(authCfg))
	{
		admin.GET("/maintenance/status", handler.GetMaintenanceStatus)
		admin.POST("/maintenance/status", handler.UpdateMaintenanceStatus)
	}
}
