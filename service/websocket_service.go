package service

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tieubaoca/pdf-chatbot-be/types"
)

// WebSocketService runs the chat loop over a websocket. Every chat frame
// carries the client's current document list, so the knowledge context is
// recomposed per turn exactly as on the HTTP endpoint.
type WebSocketService struct {
	chatService ChatAnswerer
	upgrader    websocket.Upgrader
}

func NewWebSocketService(chatService ChatAnswerer) *WebSocketService {
	return &WebSocketService{
		chatService: chatService,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	// Set connection properties
	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid request")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			s.handleChatMessage(r, conn, req.Payload)
		case types.TypeWebsocketPing:
			if err := conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketPong}); err != nil {
				log.Println("Write error:", err)
			}
		default:
			s.writeError(conn, "invalid message type")
		}
	}
}

func (s *WebSocketService) handleChatMessage(r *http.Request, conn *websocket.Conn, rawPayload interface{}) {
	payloadBytes, err := json.Marshal(rawPayload)
	if err != nil {
		s.writeError(conn, "invalid payload")
		return
	}
	var payload types.WebSocketChatPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		s.writeError(conn, "invalid payload")
		return
	}

	provider, err := types.ParseProvider(payload.Provider)
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}
	if len(payload.Messages) == 0 {
		s.writeError(conn, "messages must not be empty")
		return
	}

	question := payload.Messages[len(payload.Messages)-1].Content
	answer, err := s.chatService.Answer(r.Context(), payload.Documents, question, payload.SystemPrompt, provider, payload.ModelName)
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}

	res := types.WebSocketResponse{
		Type:    types.TypeWebsocketChat,
		Payload: types.WebSocketChatResponse{Message: answer},
	}
	if err := conn.WriteJSON(res); err != nil {
		log.Println("Write error:", err)
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	res := types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebSocketErrorResponse{Error: message},
	}
	if err := conn.WriteJSON(res); err != nil {
		log.Println("Write error:", err)
	}
}
