package service

import (
	"context"
	"fmt"

	"github.com/tieubaoca/pdf-chatbot-be/types"
)

// ExtractService routes document extraction to the declared provider, hiding
// their incompatible capabilities behind one contract: Anthropic reads the PDF
// natively over the wire, OpenAI-selected uploads are parsed locally.
type ExtractService struct {
	anthropic DocumentExtractor
	parser    TextParser
}

func NewExtractService(anthropic DocumentExtractor, parser TextParser) *ExtractService {
	return &ExtractService{
		anthropic: anthropic,
		parser:    parser,
	}
}

// Extract turns one uploaded PDF into plain text. Model selection applies only
// to the multimodal provider; the OpenAI path parses locally and ignores
// modelName. Extraction either succeeds in full or fails with the underlying
// error, no partial text is returned.
func (s *ExtractService) Extract(ctx context.Context, fileBytes []byte, provider types.Provider, modelName string) (string, error) {
	switch provider {
	case types.ProviderAnthropic:
		return s.anthropic.ExtractDocument(ctx, fileBytes, modelName)
	case types.ProviderOpenAI:
		return s.parser.ExtractText(fileBytes)
	default:
		return "", fmt.Errorf("unsupported provider %q", provider)
	}
}
