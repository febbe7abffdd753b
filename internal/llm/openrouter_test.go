package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booklens/backend/internal/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestClient points a client at handler and closes everything on cleanup
func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenRouterClient {
	t.Helper()
	srv := httptest.NewServer(handler)

	cfg := DefaultOpenRouterConfig("test-key")
	cfg.BaseURL = srv.URL + "/api/v1/"
	cfg.Timeout = 5 * time.Second
	client := NewOpenRouterClient(cfg, zaptest.NewLogger(t))

	t.Cleanup(func() {
		client.httpClient.CloseIdleConnections()
		srv.Close()
	})
	return client
}

func TestOpenRouterCompleteSendsRequest(t *testing.T) {
	var got chatRequest
	var headers http.Header
	var path string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		headers = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"books\":[]}"}}]}`))
	})

	reply, err := client.Complete(context.Background(), "system text", "user text")

	require.NoError(t, err)
	assert.Equal(t, `{"books":[]}`, reply)

	assert.Equal(t, "/api/v1/chat/completions", path)
	assert.Equal(t, "Bearer test-key", headers.Get("Authorization"))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, DefaultSiteURL, headers.Get("HTTP-Referer"))
	assert.Equal(t, AppTitle, headers.Get("X-Title"))

	assert.Equal(t, DefaultOpenRouterModel, got.Model)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, []chatMessage{
		{Role: "system", Content: "system text"},
		{Role: "user", Content: "user text"},
	}, got.Messages)
}

func TestOpenRouterCompleteUpstreamStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Insufficient credits"}}`))
	})

	_, err := client.Complete(context.Background(), "s", "u")

	var upstream *recommend.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusPaymentRequired, upstream.StatusCode)
	assert.Equal(t, `Upstream 402: {"error":{"message":"Insufficient credits"}}`, err.Error())
}

func TestOpenRouterCompleteMissingContent(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"choices":[]}`,
		`{"choices":[{"message":{}}]}`,
		`{"choices":[{"message":{"content":null}}]}`,
	} {
		t.Run(body, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			reply, err := client.Complete(context.Background(), "s", "u")

			require.NoError(t, err)
			assert.Equal(t, "", reply)
		})
	}
}

func TestOpenRouterCompleteInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	})

	_, err := client.Complete(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestOpenRouterCompleteHonorsContext(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, "s", "u")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
