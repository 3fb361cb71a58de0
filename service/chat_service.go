package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tieubaoca/pdf-chatbot-be/types"
)

const knowledgeSeparator = "\n\n---\n\n"

// ComposeKnowledgeContext builds the knowledge context injected into every
// chat turn: one labeled block per document, in list order, joined by a fixed
// separator. The result is a pure function of the document list, recomputed on
// each call; an empty list yields an empty string.
func ComposeKnowledgeContext(documents []types.Document) string {
	blocks := make([]string, 0, len(documents))
	for _, doc := range documents {
		blocks = append(blocks, "["+doc.Name+"]\n"+doc.ExtractedText)
	}
	return strings.Join(blocks, knowledgeSeparator)
}

// ChatService composes the knowledge context and routes a context-augmented
// question to the declared provider. Each call is a single request/response
// round trip: no retries, no streaming, no fallback provider.
type ChatService struct {
	anthropic ChatCompleter
	openai    SystemChatCompleter
}

func NewChatService(anthropic ChatCompleter, openai SystemChatCompleter) *ChatService {
	return &ChatService{
		anthropic: anthropic,
		openai:    openai,
	}
}

// Answer composes the context from the caller's document list and routes the
// question. The document list is never mutated.
func (s *ChatService) Answer(ctx context.Context, documents []types.Document, question, systemPrompt string, provider types.Provider, modelName string) (string, error) {
	return s.AnswerWithContext(ctx, ComposeKnowledgeContext(documents), question, systemPrompt, provider, modelName)
}

// AnswerWithContext routes an already-composed knowledge context. An empty
// context is still forwarded, the provider call is not short-circuited.
func (s *ChatService) AnswerWithContext(ctx context.Context, knowledgeContext, question, systemPrompt string, provider types.Provider, modelName string) (string, error) {
	switch provider {
	case types.ProviderAnthropic:
		prompt := "Knowledge Base:\n" + knowledgeContext + "\n\nQuestion: " + question + "\n\n" + systemPrompt
		return s.anthropic.Chat(ctx, prompt, modelName)
	case types.ProviderOpenAI:
		systemMessage := "Knowledge: " + knowledgeContext + "\n" + systemPrompt
		return s.openai.Chat(ctx, systemMessage, question, modelName)
	default:
		return "", fmt.Errorf("unsupported provider %q", provider)
	}
}
