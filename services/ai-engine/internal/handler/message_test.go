package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/application"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/domain"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/infrastructure/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	response string
	err      error
}

func (s *scriptedLLM) Complete(context.Context, []domain.Turn) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newRouter(llm domain.CompletionClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := application.NewGovernanceService(store.NewMemorySessionStore(), llm, nil)
	h := NewMessageHandler(svc)

	r := gin.New()
	r.POST("/api/ai/message", h.HandleMessage)
	return r
}

func doRequest(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleMessageSuccess(t *testing.T) {
	r := newRouter(&scriptedLLM{response: `{"intent":"grievance","fields":{"grievance_category":"noise"},"confidence":0.9,"explanation":"x"}`})
	w := doRequest(r, `{"message":"My grievance category is noise pollution","session_id":"abc"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp["session_id"])
	assert.Equal(t, "grievance", resp["intent"])
	assert.Equal(t, "grievance_registered", resp["decision"])
	assert.Equal(t, float64(5), resp["sla_days"])

	audit, ok := resp["audit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.9, audit["ai_confidence"])
	assert.Equal(t, false, audit["escalation_triggered"])
}

func TestHandleMessageMissingMessage(t *testing.T) {
	called := false
	llm := &scriptedLLM{}
	r := gin.New()
	gin.SetMode(gin.TestMode)
	svc := application.NewGovernanceService(store.NewMemorySessionStore(), completionFunc(func(ctx context.Context, m []domain.Turn) (string, error) {
		called = true
		return llm.Complete(ctx, m)
	}), nil)
	r.POST("/api/ai/message", NewMessageHandler(svc).HandleMessage)

	w := doRequest(r, `{"session_id":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Message is required")
	assert.False(t, called, "pipeline must not run for a rejected request")
}

type completionFunc func(context.Context, []domain.Turn) (string, error)

func (f completionFunc) Complete(ctx context.Context, m []domain.Turn) (string, error) {
	return f(ctx, m)
}

func TestHandleMessageInvalidJSONBody(t *testing.T) {
	r := newRouter(&scriptedLLM{})
	w := doRequest(r, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMessageParseFailureCarriesRaw(t *testing.T) {
	r := newRouter(&scriptedLLM{response: "plain refusal text"})
	w := doRequest(r, `{"message":"hello"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AI returned invalid JSON", resp["error"])
	assert.Equal(t, "plain refusal text", resp["raw"])
}

func TestHandleMessageGatewayFailureOmitsRaw(t *testing.T) {
	r := newRouter(&scriptedLLM{err: fmt.Errorf("%w: dial tcp: refused", domain.ErrModelUnavailable)})
	w := doRequest(r, `{"message":"hello"}`)

	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AI service unavailable", resp["error"])
	_, hasRaw := resp["raw"]
	assert.False(t, hasRaw)
}
