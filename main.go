package main

import (
	"net/http"
	"os"

	"food-marketplace-api/config"
	"food-marketplace-api/logger"
	"food-marketplace-api/middleware"
	"food-marketplace-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	zl := logger.Init()

	config.Load()
	gin.SetMode(config.C.GinMode)
	config.InitDB()

	if err := os.MkdirAll(config.C.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create upload directory")
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zl))

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Marketplace API",
			"version": "1.0.0",
		})
	})

	// Uploaded images are served straight from disk
	r.Static("/uploads", config.C.UploadDir)

	// Register all routes
	routes.SetupRoutes(r)

	log.Info().Str("port", config.C.Port).Msg("server starting")
	if err := r.Run(":" + config.C.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
