package recommend

import (
	"context"
	"errors"
	"net/http"
	"time"

	"booklens/backend/internal/model"
	"booklens/backend/internal/recommend/deps"
	"booklens/backend/internal/recommend/prompt"
	"booklens/backend/internal/recommend/response"

	"go.uber.org/zap"
)

// Recommender turns a query into book cards using the collaborator
type Recommender struct {
	completer     deps.Completer
	promptBuilder *prompt.Builder
	logger        *zap.Logger
}

// NewRecommender creates a new Recommender
func NewRecommender(completer deps.Completer, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{
		completer:     completer,
		promptBuilder: prompt.NewBuilder(),
		logger:        logger,
	}
}

// Provider names the configured collaborator
func (r *Recommender) Provider() string {
	return r.completer.Name()
}

// Recommend sends a normalized query to the collaborator and sanitizes the reply
func (r *Recommender) Recommend(ctx context.Context, q model.Query) ([]model.Book, error) {
	if q.Text == "" {
		return nil, ErrTextRequired
	}

	payload := r.promptBuilder.Build(q)

	start := time.Now()
	raw, err := r.completer.Complete(ctx, payload.System, payload.User)
	elapsed := time.Since(start)
	if err != nil {
		r.logger.Warn("[UPSTREAM] Completion failed",
			zap.String("provider", r.completer.Name()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, err
	}
	r.logger.Debug("[UPSTREAM] Raw reply",
		zap.String("provider", r.completer.Name()),
		zap.Duration("elapsed", elapsed),
		zap.String("raw", truncateForLog(raw, 200)))

	result := response.Parse(raw)
	if !result.OK {
		r.logger.Warn("[RECOMMEND] Malformed reply", zap.String("cleaned", truncateForLog(result.Cleaned, 200)))
		return nil, &MalformedReplyError{Raw: result.Cleaned}
	}

	r.logger.Info("[RECOMMEND] Recommendation ready",
		zap.String("mode", string(q.Mode)),
		zap.Int("items", len(result.Items)),
		zap.Duration("elapsed", elapsed))
	return result.Items, nil
}

// Envelope renders the outcome of Recommend as a status code and JSON body
func Envelope(items []model.Book, err error) (int, any) {
	if err == nil {
		if items == nil {
			items = []model.Book{}
		}
		return http.StatusOK, model.RecommendResponse{Items: items}
	}
	if IsValidation(err) {
		return http.StatusBadRequest, model.ErrorResponse{Error: err.Error()}
	}
	var malformed *MalformedReplyError
	if errors.As(err, &malformed) {
		raw := malformed.Raw
		return http.StatusInternalServerError, model.ErrorResponse{Error: malformed.Error(), Raw: &raw}
	}
	msg := err.Error()
	if msg == "" {
		msg = "Unknown error"
	}
	return http.StatusInternalServerError, model.ErrorResponse{Error: msg}
}

// truncateForLog truncates a string for logging purposes
func truncateForLog(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}

