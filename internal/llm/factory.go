package llm

import (
	"context"
	"fmt"

	"booklens/backend/internal/config"
	"booklens/backend/internal/recommend/deps"

	"go.uber.org/zap"
)

// New creates the completer selected by cfg.Provider
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (deps.Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenRouter:
		if cfg.OpenRouterAPIKey == "" {
			logger.Warn("[CONFIG] OPENROUTER_API_KEY is not set, upstream calls will be unauthenticated")
		}
		return NewOpenRouterClient(OpenRouterConfig{
			APIKey:      cfg.OpenRouterAPIKey,
			BaseURL:     cfg.OpenRouterBaseURL,
			Model:       cfg.OpenRouterModel,
			SiteURL:     cfg.SiteURL,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, logger), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, float32(cfg.Temperature), logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
