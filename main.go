package main

import (
	"log"
	"time"

	"linkforge/internal/blob"
	"linkforge/internal/config"
	"linkforge/internal/controllers"
	"linkforge/internal/middleware"
	"linkforge/internal/service"
	"linkforge/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Pick the blob store backend. Redis is optional; fall back to the file
	// store when it is not configured or unreachable.
	var blobStore blob.Store
	if cfg.RedisURL != "" {
		blobStore, err = blob.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to file storage", zap.Error(err))
			blobStore = nil
		} else {
			logger.Info("Using Redis blob store")
		}
	}
	if blobStore == nil {
		blobStore, err = blob.NewFileStore(cfg.StorageDir)
		if err != nil {
			logger.Fatal("Failed to initialize file storage", zap.Error(err))
		}
		logger.Info("Using file blob store", zap.String("dir", cfg.StorageDir))
	}

	// Initialize the record store and services
	recordStore := store.New(blobStore, logger)
	latency := time.Duration(cfg.SimulatedLatencyMS) * time.Millisecond
	linkService := service.NewLinkService(recordStore, logger, cfg.BaseDomain, latency)
	qrService := service.NewQRCodeService(recordStore, logger)

	// Initialize controllers
	shortenerController := controllers.NewShortenerController(linkService)
	qrcodeController := controllers.NewQRCodeController(qrService)
	analyticsController := controllers.NewAnalyticsController(linkService)

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/shorten", shortenerController.Shorten)
		api.GET("/urls", shortenerController.ListURLs)
		api.DELETE("/urls/:id", shortenerController.DeleteURL)
		api.POST("/urls/:id/click", shortenerController.SimulateClick)
		api.POST("/urls/:id/scan", shortenerController.SimulateScan)

		api.POST("/qrcodes", qrcodeController.Generate)
		api.GET("/qrcodes", qrcodeController.List)
		api.POST("/qrcodes/:id/scan", qrcodeController.SimulateScan)
		api.GET("/qrcodes/:id/image", qrcodeController.Download)

		api.GET("/analytics", analyticsController.Summary)
		api.GET("/preferences/darkmode", analyticsController.GetDarkMode)
		api.PUT("/preferences/darkmode", analyticsController.SetDarkMode)
	}

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
