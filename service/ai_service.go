package service

import (
	"context"

	"github.com/tieubaoca/pdf-chatbot-be/types"
)

// DocumentExtractor turns raw PDF bytes into plain text by way of a
// multimodal completion call.
type DocumentExtractor interface {
	ExtractDocument(ctx context.Context, fileBytes []byte, modelName string) (string, error)
}

// TextParser extracts the text layer of a PDF locally, without a network call.
type TextParser interface {
	ExtractText(fileBytes []byte) (string, error)
}

// ChatCompleter answers a single-prompt completion (Anthropic shape: one user
// message, reply assembled from text content blocks).
type ChatCompleter interface {
	Chat(ctx context.Context, prompt string, modelName string) (string, error)
}

// SystemChatCompleter answers a system+user completion (OpenAI shape: the
// knowledge context travels in the system message).
type SystemChatCompleter interface {
	Chat(ctx context.Context, systemMessage, userMessage, modelName string) (string, error)
}

// Extractor is the contract the ingestion boundary consumes.
type Extractor interface {
	Extract(ctx context.Context, fileBytes []byte, provider types.Provider, modelName string) (string, error)
}

// ChatAnswerer is the contract the chat boundaries consume.
type ChatAnswerer interface {
	Answer(ctx context.Context, documents []types.Document, question, systemPrompt string, provider types.Provider, modelName string) (string, error)
	AnswerWithContext(ctx context.Context, knowledgeContext, question, systemPrompt string, provider types.Provider, modelName string) (string, error)
}
