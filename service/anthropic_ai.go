package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tieubaoca/pdf-chatbot-be/types"
)

const (
	anthropicMessagesPath = "/v1/messages"
	anthropicAPIVersion   = "2023-06-01"

	contentTypeText     = "text"
	contentTypeDocument = "document"
	mediaTypePDF        = "application/pdf"

	// extractInstruction asks the model for a full text extraction of the
	// attached PDF, kept in Thai to match the product's primary audience.
	extractInstruction = "กรุณาสกัดข้อความทั้งหมดจากเอกสาร PDF นี้"

	maxExtractTokens = 4000
	maxChatTokens    = 2000
)

// AnthropicService talks to the Anthropic messages API. It covers both core
// operations of the multimodal provider: document text extraction and
// knowledge-grounded chat.
type AnthropicService struct {
	client *resty.Client
	model  string
}

func NewAnthropicService(baseURL, apiKey, model string, timeout time.Duration) *AnthropicService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", anthropicAPIVersion)

	return &AnthropicService{
		client: client,
		model:  model,
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type   string                   `json:"type"`
	Text   string                   `json:"text,omitempty"`
	Source *anthropicDocumentSource `json:"source,omitempty"`
}

type anthropicDocumentSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

type anthropicErrorResponse struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ExtractDocument submits the PDF as a base64 document content block and
// returns the reply's text blocks joined with newlines.
func (s *AnthropicService) ExtractDocument(ctx context.Context, fileBytes []byte, modelName string) (string, error) {
	req := &anthropicRequest{
		Model:     s.resolveModel(modelName),
		MaxTokens: maxExtractTokens,
		Messages: []anthropicMessage{{
			Role: types.RoleUser,
			Content: []anthropicContent{
				{
					Type: contentTypeDocument,
					Source: &anthropicDocumentSource{
						Type:      "base64",
						MediaType: mediaTypePDF,
						Data:      base64.StdEncoding.EncodeToString(fileBytes),
					},
				},
				{
					Type: contentTypeText,
					Text: extractInstruction,
				},
			},
		}},
	}

	resp, err := s.complete(ctx, req)
	if err != nil {
		return "", err
	}
	return joinTextBlocks(resp.Content), nil
}

// Chat sends a single user message and returns the reply's text blocks joined
// with newlines.
func (s *AnthropicService) Chat(ctx context.Context, prompt string, modelName string) (string, error) {
	req := &anthropicRequest{
		Model:     s.resolveModel(modelName),
		MaxTokens: maxChatTokens,
		Messages: []anthropicMessage{{
			Role:    types.RoleUser,
			Content: []anthropicContent{{Type: contentTypeText, Text: prompt}},
		}},
	}

	resp, err := s.complete(ctx, req)
	if err != nil {
		return "", err
	}
	return joinTextBlocks(resp.Content), nil
}

// complete performs a single request to the messages API. Upstream error
// messages are surfaced to the caller unmodified.
func (s *AnthropicService) complete(ctx context.Context, req *anthropicRequest) (*anthropicResponse, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(anthropicMessagesPath)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		if msg := parseAnthropicError(resp.Body()); msg != "" {
			return nil, errors.New(msg)
		}
		return nil, fmt.Errorf("anthropic API returned status %d", resp.StatusCode())
	}

	var anthropicResp anthropicResponse
	if err := json.Unmarshal(resp.Body(), &anthropicResp); err != nil {
		return nil, fmt.Errorf("failed to decode anthropic response: %w", err)
	}
	return &anthropicResp, nil
}

func (s *AnthropicService) resolveModel(modelName string) string {
	if modelName != "" {
		return modelName
	}
	return s.model
}

func parseAnthropicError(body []byte) string {
	var errResp anthropicErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		return errResp.Error.Message
	}
	return ""
}

func joinTextBlocks(blocks []anthropicContent) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.Type == contentTypeText {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "\n")
}
