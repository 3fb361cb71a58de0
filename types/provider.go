package types

import "fmt"

// Provider identifies one of the supported AI backends. The set is closed:
// extraction and chat both branch exhaustively on it, and any other value is
// rejected at the boundary.
type Provider string

const (
	ProviderAnthropic Provider = "Anthropic"
	ProviderOpenAI    Provider = "OpenAI"
)

// ParseProvider validates a provider name coming from a request.
func ParseProvider(name string) (Provider, error) {
	switch Provider(name) {
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	}
	return "", fmt.Errorf("unsupported provider %q", name)
}
