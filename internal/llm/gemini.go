package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"booklens/backend/internal/recommend"

	"go.uber.org/zap"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultGeminiModel is the Gemini model used when none is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient implements deps.Completer using the Gemini API
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// NewGeminiClient creates a genai client for apiKey and wraps it
func NewGeminiClient(ctx context.Context, apiKey, model string, temperature float32, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return newGeminiClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model, temperature, logger)
}

func newGeminiClient(ctx context.Context, cc *genai.ClientConfig, model string, temperature float32, logger *zap.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiClient{
		client:      client,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}, nil
}

// Name returns the provider name
func (c *GeminiClient) Name() string { return "gemini" }

// Complete generates content with the system prompt as system instruction
func (c *GeminiClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: userPrompt}},
		},
	}, config)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	// Extract text from response
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}

	c.logger.Warn("[UPSTREAM] Gemini returned no text", zap.String("model", c.model))
	return "", nil
}

// classifyGeminiError maps SDK errors that carry a status to UpstreamError.
// Anything else is returned unchanged.
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &recommend.UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		return &recommend.UpstreamError{StatusCode: httpStatusFromCode(s.Code()), Body: s.Message()}
	}
	return err
}

// httpStatusFromCode maps the gRPC codes the Gemini API uses to HTTP statuses
func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
