package types

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message represents a single message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat. Messages carries the whole
// conversation so clients do not need to truncate, but only the most recent
// message is forwarded to the provider; earlier turns are never replayed and
// the knowledge context is re-derived from documents alone.
type ChatRequest struct {
	Provider         string    `json:"provider"`
	ModelName        string    `json:"modelName"`
	Messages         []Message `json:"messages"`
	KnowledgeContext string    `json:"knowledgeContext"`
	SystemPrompt     string    `json:"systemPrompt"`
}

type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}
