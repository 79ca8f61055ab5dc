package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meter-reading-backend/internal/config"
	"meter-reading-backend/internal/dedup"
	"meter-reading-backend/internal/gemini"
	"meter-reading-backend/internal/handlers"
	"meter-reading-backend/internal/service"
	"meter-reading-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var logger *zap.Logger
	var err error
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; upload requests will fail until it is configured")
	}

	// The static file server and the storage writer share this root.
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("failed to create upload directory", zap.Error(err))
	}

	store := storage.New(cfg.UploadDir, cfg.BaseURL)
	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	svc := service.NewMeasurementService(store, geminiClient, dedup.NoopChecker{}, logger)

	uploadHandler := handlers.NewUploadHandler(cfg, svc, logger)

	// Setup router
	router := gin.Default()

	// Stored images are publicly addressable by their identifier.
	router.Static("/uploads", cfg.UploadDir)

	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")
	api.POST("/upload", uploadHandler.Upload)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
