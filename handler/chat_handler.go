package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf-chatbot-be/service"
	"github.com/tieubaoca/pdf-chatbot-be/types"
)

type ChatHandler struct {
	chatService service.ChatAnswerer
}

func NewChatHandler(chatService service.ChatAnswerer) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	provider, err := types.ParseProvider(req.Provider)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "messages must not be empty",
		})
		return
	}

	// Only the latest message is forwarded; history is not replayed.
	question := req.Messages[len(req.Messages)-1].Content

	response, err := h.chatService.AnswerWithContext(
		c.Request.Context(),
		req.KnowledgeContext,
		question,
		req.SystemPrompt,
		provider,
		req.ModelName,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.ChatResponse{
		Success:  true,
		Response: response,
	})
}
