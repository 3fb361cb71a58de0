package types

const (
	TypeWebsocketPing  = "ping"
	TypeWebsocketPong  = "pong"
	TypeWebsocketChat  = "chat"
	TypeWebsocketError = "error"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WebSocketChatPayload carries the client's document list alongside the
// conversation; the knowledge context is composed server-side per turn.
type WebSocketChatPayload struct {
	Provider     string     `json:"provider"`
	ModelName    string     `json:"modelName"`
	Documents    []Document `json:"documents"`
	Messages     []Message  `json:"messages"`
	SystemPrompt string     `json:"systemPrompt"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketChatResponse struct {
	Message string `json:"message"`
}

type WebSocketErrorResponse struct {
	Error string `json:"error"`
}
