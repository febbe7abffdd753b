package server

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"booklens/backend/internal/config"
	"booklens/backend/internal/handler"
	"booklens/backend/internal/llm"
	"booklens/backend/internal/middleware"
	"booklens/backend/internal/recommend"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRecommender builds the configured collaborator and installs the
// recommender. On failure the service starts degraded.
func InitRecommender(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	completer, err := llm.New(ctx, cfg, logger)
	if err != nil {
		handler.InitRecommender(nil, logger)
		return err
	}
	handler.InitRecommender(recommend.NewRecommender(completer, logger), logger)
	return nil
}

// New installs the recommender and returns the router.
// A recommender that fails to initialize is logged and the service starts degraded.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if err := InitRecommender(ctx, cfg, logger); err != nil {
		logger.Warn("[WARN] Failed to initialize recommender", zap.Error(err))
		logger.Warn("[WARN] Recommendations will be unavailable")
	} else {
		logger.Info("[INFO] Recommender initialized successfully")
	}
	return NewRouter(cfg, logger)
}

// Run serves on cfg.Port until the listener fails
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	r := New(ctx, cfg, logger)

	logger.Info("[INFO] Server ready", zap.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}

// NewRouter wires middleware and routes
func NewRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger))

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	allowedOrigins := []string{}
	if !cfg.IsProduction() {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173", "http://localhost:3001")
	}
	allowedOrigins = append(allowedOrigins, cfg.AllowedOrigins...)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoints (outside /api group)
	r.GET("/health", handler.HandleHealth)
	r.GET("/ready", handler.HandleReadiness)

	api := r.Group("/api")
	{
		api.POST("/recommend", handler.HandleRecommend)
	}

	if cfg.IsProduction() {
		r.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
	}

	r.NoRoute(func(c *gin.Context) {
		if !cfg.IsProduction() || strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	logger.Info("[INFO] Router ready", zap.Strings("allowed_origins", allowedOrigins))
	return r
}
