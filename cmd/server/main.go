package main

import (
	"context"
	"log"

	"booklens/backend/internal/config"
	"booklens/backend/internal/logging"
	"booklens/backend/internal/server"

	"go.uber.org/zap"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("[FATAL] Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("[INFO] Starting BookLens", zap.String("env", cfg.Env), zap.String("provider", cfg.Provider))

	if err := server.Run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("[FATAL] Failed to start server", zap.Error(err))
	}
}
