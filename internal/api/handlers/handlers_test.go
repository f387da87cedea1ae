package handlers_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workmate-ai/gateway/internal/agents"
	"github.com/workmate-ai/gateway/internal/api"
	"github.com/workmate-ai/gateway/internal/api/handlers"
	"github.com/workmate-ai/gateway/internal/chat"
	"github.com/workmate-ai/gateway/internal/config"
	"github.com/workmate-ai/gateway/internal/fallback"
	"github.com/workmate-ai/gateway/pkg/models"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Port:           8080,
		Version:        "test",
		Provider:       models.ProviderMock,
		RequestTimeout: time.Second,
	}
	reg := agents.NewRegistry()
	responder := fallback.NewResponderWithRand(rand.New(rand.NewSource(1)))
	engine := chat.NewEngine(reg, nil, responder, cfg.Provider)

	return api.NewRouter(cfg, handlers.New(engine, reg, cfg))
}

func postChat(t *testing.T, router http.Handler, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChat_MockProvider(t *testing.T) {
	router := newTestRouter(t)

	rec := postChat(t, router, map[string]any{
		"agent":   "datamate",
		"message": "Como estão as vendas?",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID       string `json:"id"`
		Response string `json:"response"`
		Provider string `json:"provider"`
		Fallback bool   `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Contains(t, resp.Response, "Análise de Vendas")
	assert.Equal(t, "mock", resp.Provider)
	assert.True(t, resp.Fallback)
}

func TestChat_WithHistory(t *testing.T) {
	router := newTestRouter(t)

	rec := postChat(t, router, map[string]any{
		"agent":   "coachmate",
		"message": "quero aprender Go",
		"conversationHistory": []map[string]string{
			{"sender": "user", "text": "oi"},
			{"sender": "agent", "text": "olá! como posso ajudar?"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["response"])
}

func TestChat_UnknownAgent(t *testing.T) {
	router := newTestRouter(t)

	rec := postChat(t, router, map[string]any{
		"agent":   "ghost",
		"message": "hi",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "ghost")
}

func TestChat_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"no agent", map[string]any{"message": "oi"}},
		{"no message", map[string]any{"agent": "datamate"}},
		{"blank message", map[string]any{"agent": "datamate", "message": "   "}},
		{"empty body", map[string]any{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postChat(t, router, tc.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestChat_MalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{{{")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAgents(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var personas []models.Persona
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &personas))
	require.Len(t, personas, 5)

	ids := make([]string, 0, len(personas))
	for _, p := range personas {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"datamate", "textmate", "creativemate", "taskmate", "coachmate"}, ids)

	// System prompts stay server-side.
	assert.NotContains(t, rec.Body.String(), "system_prompt")
}

func TestGetAgent(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agents/textmate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Persona
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "textmate", p.ID)
	assert.Equal(t, "TextMate", p.Name)
}

func TestGetAgent_NotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agents/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProviderInfo(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/provider", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "mock", resp["provider"])
	assert.Equal(t, true, resp["configured"])
	assert.NotContains(t, rec.Body.String(), "api_key")
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestVersion(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "test", resp["version"])
}
