package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/pdf-chatbot-be/types"
)

type chatAnswererStub struct {
	knowledgeContext string
	question         string
	systemPrompt     string
	provider         types.Provider
	model            string
	reply            string
	err              error
}

func (s *chatAnswererStub) Answer(ctx context.Context, documents []types.Document, question, systemPrompt string, provider types.Provider, modelName string) (string, error) {
	return s.AnswerWithContext(ctx, "", question, systemPrompt, provider, modelName)
}

func (s *chatAnswererStub) AnswerWithContext(ctx context.Context, knowledgeContext, question, systemPrompt string, provider types.Provider, modelName string) (string, error) {
	s.knowledgeContext = knowledgeContext
	s.question = question
	s.systemPrompt = systemPrompt
	s.provider = provider
	s.model = modelName
	return s.reply, s.err
}

func setupChatRouter(stub *chatAnswererStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/chat", NewChatHandler(stub).HandleChat)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleChat(t *testing.T) {
	stub := &chatAnswererStub{reply: "the total is 100 USD"}
	router := setupChatRouter(stub)

	w := postChat(t, router, types.ChatRequest{
		Provider:         "OpenAI",
		ModelName:        "gpt-4o",
		KnowledgeContext: "[a.pdf]\nTotal: 100 USD",
		SystemPrompt:     "Answer from the knowledge base only.",
		Messages: []types.Message{
			{Role: types.RoleUser, Content: "hello"},
			{Role: types.RoleAssistant, Content: "hi"},
			{Role: types.RoleUser, Content: "What is the total?"},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var res types.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "the total is 100 USD", res.Response)

	// Only the latest message reaches the provider.
	assert.Equal(t, "What is the total?", stub.question)
	assert.Equal(t, "[a.pdf]\nTotal: 100 USD", stub.knowledgeContext)
	assert.Equal(t, types.ProviderOpenAI, stub.provider)
	assert.Equal(t, "gpt-4o", stub.model)
}

func TestHandleChatInvalidBody(t *testing.T) {
	router := setupChatRouter(&chatAnswererStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatUnsupportedProvider(t *testing.T) {
	router := setupChatRouter(&chatAnswererStub{})

	w := postChat(t, router, types.ChatRequest{
		Provider: "Gemini",
		Messages: []types.Message{{Role: types.RoleUser, Content: "q"}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, `unsupported provider "Gemini"`, res.Error)
}

func TestHandleChatEmptyMessages(t *testing.T) {
	router := setupChatRouter(&chatAnswererStub{})

	w := postChat(t, router, types.ChatRequest{Provider: "OpenAI"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "messages must not be empty", res.Error)
}

func TestHandleChatProviderErrorSurfaced(t *testing.T) {
	stub := &chatAnswererStub{err: errors.New("Number of requests has exceeded your rate limit")}
	router := setupChatRouter(stub)

	w := postChat(t, router, types.ChatRequest{
		Provider: "Anthropic",
		Messages: []types.Message{{Role: types.RoleUser, Content: "q"}},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, "Number of requests has exceeded your rate limit", res.Error)
}
