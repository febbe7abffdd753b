package handler

import (
	"io"
	"net/http"
	"sync"
	"time"

	"booklens/backend/internal/middleware"
	"booklens/backend/internal/recommend"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxBodyBytes caps the size of a recommendation request body
const MaxBodyBytes = 64 * 1024

var (
	recommender   *recommend.Recommender
	recommenderMu sync.RWMutex
	logger        = zap.NewNop()
)

// InitRecommender installs the recommender used by HandleRecommend.
// Passing nil marks the service as unavailable.
func InitRecommender(r *recommend.Recommender, l *zap.Logger) {
	recommenderMu.Lock()
	defer recommenderMu.Unlock()
	recommender = r
	if l != nil {
		logger = l
	}
}

// current returns the installed recommender and logger as one snapshot
func current() (*recommend.Recommender, *zap.Logger) {
	recommenderMu.RLock()
	defer recommenderMu.RUnlock()
	return recommender, logger
}

// HandleRecommend serves POST /api/recommend
func HandleRecommend(c *gin.Context) {
	startTime := time.Now()
	rec, log := current()

	// An unreadable body is handled like an empty one
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if err != nil {
		log.Info("[RECOMMEND] Unreadable request body", zap.Error(err))
		body = nil
	}

	q, err := recommend.ParseQuery(body)
	if err != nil {
		code, envelope := recommend.Envelope(nil, err)
		c.JSON(code, envelope)
		return
	}

	if rec == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service is not available"})
		return
	}

	items, err := rec.Recommend(c.Request.Context(), q)
	code, envelope := recommend.Envelope(items, err)

	log.Info("[PERF] Recommend finished",
		zap.Int("status", code),
		zap.Int("items", len(items)),
		zap.Duration("elapsed", time.Since(startTime)),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)))

	c.JSON(code, envelope)
}
