package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("invoice.pdf", 2048, "Total: 100 USD", ProviderOpenAI)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "invoice.pdf", doc.Name)
	assert.Equal(t, "2.00 KB", doc.SizeLabel)
	assert.Equal(t, "Total: 100 USD", doc.ExtractedText)
	assert.Equal(t, ProviderOpenAI, doc.Provider)
}

func TestNewDocumentUniqueIdentifiers(t *testing.T) {
	first := NewDocument("a.pdf", 1, "", ProviderAnthropic)
	second := NewDocument("a.pdf", 1, "", ProviderAnthropic)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewDocumentAllowsEmptyText(t *testing.T) {
	doc := NewDocument("scan.pdf", 512, "", ProviderOpenAI)

	assert.Empty(t, doc.ExtractedText)
	assert.Equal(t, "0.50 KB", doc.SizeLabel)
}
