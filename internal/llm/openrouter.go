package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"booklens/backend/internal/recommend"

	"go.uber.org/zap"
)

const (
	// DefaultOpenRouterModel is the free-tier model used when none is configured
	DefaultOpenRouterModel = "deepseek/deepseek-r1-0528-qwen3-8b:free"
	// DefaultOpenRouterBaseURL is the OpenRouter API root
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	// DefaultSiteURL is sent as HTTP-Referer
	DefaultSiteURL = "http://localhost:3001"
	// AppTitle is sent as X-Title
	AppTitle = "BookLens"

	// maxResponseBytes bounds how much of an upstream body is read
	maxResponseBytes = 10 * 1024 * 1024
)

// OpenRouterConfig holds settings for the OpenRouter client
type OpenRouterConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	SiteURL     string
	Temperature float64
	Timeout     time.Duration
}

// DefaultOpenRouterConfig returns the defaults for an API key
func DefaultOpenRouterConfig(apiKey string) OpenRouterConfig {
	return OpenRouterConfig{
		APIKey:      apiKey,
		BaseURL:     DefaultOpenRouterBaseURL,
		Model:       DefaultOpenRouterModel,
		SiteURL:     DefaultSiteURL,
		Temperature: 0.7,
		Timeout:     60 * time.Second,
	}
}

// OpenRouterClient implements deps.Completer against the OpenRouter
// chat-completions API
type OpenRouterClient struct {
	apiKey      string
	baseURL     string
	model       string
	siteURL     string
	temperature float64
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewOpenRouterClient creates a new OpenRouter client
func NewOpenRouterClient(cfg OpenRouterConfig, logger *zap.Logger) *OpenRouterClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenRouterClient{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		siteURL:     cfg.SiteURL,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
}

// Name returns the provider name
func (c *OpenRouterClient) Name() string { return "openrouter" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat completion and returns the first choice's content.
// A non-2xx status becomes a *recommend.UpstreamError. There are no retries.
func (c *OpenRouterClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", c.siteURL)
	req.Header.Set("X-Title", AppTitle)

	c.logger.Debug("[UPSTREAM] Sending completion",
		zap.String("model", c.model),
		zap.Int("system_len", len(systemPrompt)),
		zap.Int("user_len", len(userPrompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &recommend.UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == nil {
		c.logger.Warn("[UPSTREAM] No content in first choice", zap.String("model", c.model))
		return "", nil
	}
	return *parsed.Choices[0].Message.Content, nil
}
