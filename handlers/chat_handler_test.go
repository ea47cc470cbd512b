package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"educator_ai/config"
	"educator_ai/models"
)

// Mocks
type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) GetRecommendations(ctx context.Context, userInput string) models.RecommendationResult {
	args := m.Called(ctx, userInput)
	return args.Get(0).(models.RecommendationResult)
}

type panicRecommender struct{}

func (panicRecommender) GetRecommendations(context.Context, string) models.RecommendationResult {
	panic("unexpected")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Educator AI</h1>"), 0o644))

	cfg := &config.Config{}
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.StaticDir = dir
	return cfg
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestChatHandler_Success(t *testing.T) {
	recommender := new(MockRecommender)
	recommender.On("GetRecommendations", mock.Anything, "How can I make my online classes more engaging?").
		Return(models.RecommendationResult{
			Insight: "Try gamified quizzes.",
			Recommendations: []models.Recommendation{
				{"title": "Tool: Kahoot!", "type": "EdTech Tool", "description": "...", "link": "https://kahoot.com", "reason": "quick checks"},
			},
		})
	router := NewRouter(testConfig(t), recommender)

	rec := doRequest(t, router, http.MethodPost, "/chat", `{"message":"  How can I make my online classes more engaging?  "}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"status": "success",
		"insight": "Try gamified quizzes.",
		"recommendations": [
			{"title": "Tool: Kahoot!", "type": "EdTech Tool", "description": "...", "link": "https://kahoot.com", "reason": "quick checks"}
		]
	}`, rec.Body.String())
	recommender.AssertExpectations(t)
}

func TestChatHandler_FallbackStillSuccess(t *testing.T) {
	recommender := new(MockRecommender)
	recommender.On("GetRecommendations", mock.Anything, "hi").Return(models.RecommendationResult{
		Insight:         "I'm having trouble processing your request right now. Please try again later.",
		Recommendations: []models.Recommendation{},
	})
	router := NewRouter(testConfig(t), recommender)

	rec := doRequest(t, router, http.MethodPost, "/chat", `{"message":"hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, []any{}, body["recommendations"])
}

func TestChatHandler_EmptyInsightDefaulted(t *testing.T) {
	recommender := new(MockRecommender)
	recommender.On("GetRecommendations", mock.Anything, "hi").Return(models.RecommendationResult{})
	router := NewRouter(testConfig(t), recommender)

	rec := doRequest(t, router, http.MethodPost, "/chat", `{"message":"hi"}`)

	body := decodeBody(t, rec)
	assert.Equal(t, "Here are some recommendations for you.", body["insight"])
}

func TestChatHandler_MissingMessage(t *testing.T) {
	for name, payload := range map[string]string{
		"empty object":  `{}`,
		"blank message": `{"message":"   "}`,
	} {
		t.Run(name, func(t *testing.T) {
			recommender := new(MockRecommender)
			router := NewRouter(testConfig(t), recommender)

			rec := doRequest(t, router, http.MethodPost, "/chat", payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"No message provided","status":"error"}`, rec.Body.String())
			recommender.AssertNotCalled(t, "GetRecommendations", mock.Anything, mock.Anything)
		})
	}
}

func TestChatHandler_InvalidBody(t *testing.T) {
	for name, payload := range map[string]string{
		"not json":       `message=hi`,
		"wrong type":     `{"message": 5}`,
		"truncated json": `{"message":`,
	} {
		t.Run(name, func(t *testing.T) {
			router := NewRouter(testConfig(t), new(MockRecommender))

			rec := doRequest(t, router, http.MethodPost, "/chat", payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, "Invalid request body", body["message"])
		})
	}
}

func TestChatHandler_PanicReturnsServerError(t *testing.T) {
	router := NewRouter(testConfig(t), panicRecommender{})

	rec := doRequest(t, router, http.MethodPost, "/chat", `{"message":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"An error occurred while processing your request."}`, rec.Body.String())
}

func TestHealthHandler(t *testing.T) {
	router := NewRouter(testConfig(t), new(MockRecommender))

	rec := doRequest(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","message":"Educator AI API is running"}`, rec.Body.String())
}

func TestRouter_ServesFrontend(t *testing.T) {
	router := NewRouter(testConfig(t), new(MockRecommender))

	rec := doRequest(t, router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Educator AI")
}

func TestRouter_ServesBundledFrontend(t *testing.T) {
	cfg := testConfig(t)
	cfg.StaticDir = filepath.Join("..", config.DefaultStaticDir)
	router := NewRouter(cfg, new(MockRecommender))

	rec := doRequest(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="chat-messages"`)
	assert.Contains(t, rec.Body.String(), `src="script.js"`)

	rec = doRequest(t, router, http.MethodGet, "/script.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fetch('/chat'")
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := NewRouter(testConfig(t), new(MockRecommender))

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	router := NewRouter(testConfig(t), new(MockRecommender))

	rec := doRequest(t, router, http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/chat"`)
}
