package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

var validate = validator.New()

// Config is the runtime configuration, read from the environment
type Config struct {
	Env      string `validate:"omitempty,oneof=development production test"`
	Port     string `validate:"required,numeric"`
	LogLevel string `validate:"omitempty,oneof=debug info warn error"`

	Provider    string        `validate:"required,oneof=openrouter gemini"`
	Timeout     time.Duration `validate:"gt=0"`
	Temperature float64       `validate:"gte=0,lte=2"`

	OpenRouterAPIKey  string
	OpenRouterModel   string `validate:"required"`
	OpenRouterBaseURL string `validate:"required,url"`
	SiteURL           string `validate:"required"`

	GeminiAPIKey string `validate:"required_if=Provider gemini"`
	GeminiModel  string `validate:"required"`

	AllowedOrigins []string
	StaticDir      string
}

// IsProduction reports whether ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadDotEnv loads .env.local when present. Existing variables win.
func LoadDotEnv() {
	_ = godotenv.Load(".env.local")
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),

		Provider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenRouter)),

		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:   getEnv("OPENROUTER_MODEL", "deepseek/deepseek-r1-0528-qwen3-8b:free"),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		SiteURL:           getEnv("SITE_URL", "http://localhost:3001"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		StaticDir: getEnv("STATIC_DIR", "/app/static"),
	}

	var err error
	if cfg.Timeout, err = time.ParseDuration(getEnv("LLM_TIMEOUT", "60s")); err != nil {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
	}
	if cfg.Temperature, err = strconv.ParseFloat(getEnv("LLM_TEMPERATURE", "0.7"), 64); err != nil {
		return nil, fmt.Errorf("invalid LLM_TEMPERATURE: %w", err)
	}

	if cloudRunURL := os.Getenv("CLOUD_RUN_URL"); cloudRunURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, cloudRunURL)
	}
	if extraOrigins := os.Getenv("ALLOWED_ORIGINS"); extraOrigins != "" {
		for _, origin := range strings.Split(extraOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
