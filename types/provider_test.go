package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Provider
		wantErr string
	}{
		{name: "anthropic", input: "Anthropic", want: ProviderAnthropic},
		{name: "openai", input: "OpenAI", want: ProviderOpenAI},
		{name: "unknown", input: "Gemini", wantErr: `unsupported provider "Gemini"`},
		{name: "empty", input: "", wantErr: `unsupported provider ""`},
		{name: "wrong case", input: "openai", wantErr: `unsupported provider "openai"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProvider(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
