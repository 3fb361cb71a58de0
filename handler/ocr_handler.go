package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf-chatbot-be/service"
	"github.com/tieubaoca/pdf-chatbot-be/types"
)

type OCRHandler struct {
	extractService service.Extractor
	maxUploadSize  int64
}

func NewOCRHandler(extractService service.Extractor, maxUploadSize int64) *OCRHandler {
	return &OCRHandler{
		extractService: extractService,
		maxUploadSize:  maxUploadSize,
	}
}

func (h *OCRHandler) HandleOCR(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "file is required",
		})
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "file too large",
		})
		return
	}

	provider, err := types.ParseProvider(c.Request.FormValue("provider"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	modelName := c.Request.FormValue("modelName")

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	text, err := h.extractService.Extract(c.Request.Context(), fileBytes, provider, modelName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.OCRResponse{
		Success: true,
		Text:    text,
		Length:  len(text),
	})
}
