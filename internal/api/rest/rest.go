package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/lokeshwaran100/ai-muse/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Metadata generation (open, the result is worthless without a mint)
		v1.POST("/metadata", handler.GenerateMetadata)

		// Mirror record reads (public)
		v1.GET("/nfts", handler.ListNFTs)
		v1.GET("/nfts/:token_id", handler.GetNFT)

		// On-chain reads over the server's RPC connection (public)
		v1.GET("/nfts/:token_id/onchain", handler.GetNFTOnchain)

		// Mirror record writes (requires authentication)
		v1.POST("/nfts", middleware.Auth(authCfg), handler.CreateNFT)
		v1.PUT("/nfts/:token_id", middleware.Auth(authCfg), handler.UpdateNFT)
	}
}
