package types

import (
	"github.com/google/uuid"
	"github.com/tieubaoca/pdf-chatbot-be/utils"
)

// Document is one entry of the caller-held knowledge base. It is created at
// successful extraction and never mutated afterwards; its lifetime is bounded
// to the client session, nothing is persisted server-side.
type Document struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	SizeLabel     string   `json:"size"`
	ExtractedText string   `json:"content"`
	Provider      Provider `json:"extractedBy"`
}

// NewDocument builds a Document from a finished extraction. The identifier is
// unique per call.
func NewDocument(name string, size int64, extractedText string, provider Provider) Document {
	return Document{
		ID:            uuid.NewString(),
		Name:          name,
		SizeLabel:     utils.FormatSizeLabel(size),
		ExtractedText: extractedText,
		Provider:      provider,
	}
}
