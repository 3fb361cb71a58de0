/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf-chatbot-be/config"
	"github.com/tieubaoca/pdf-chatbot-be/handler"
	"github.com/tieubaoca/pdf-chatbot-be/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the chat server",
	Long:  `Starts the server that extracts PDF text and answers knowledge-grounded questions`,
	Run: func(cmd *cobra.Command, args []string) {

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		timeout := time.Duration(cfg.RequestTimeout) * time.Second
		anthropicService := service.NewAnthropicService(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.AnthropicModel, timeout)
		openaiService := service.NewOpenAIService(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, timeout)
		pdfService := service.NewPDFService()

		extractService := service.NewExtractService(anthropicService, pdfService)
		chatService := service.NewChatService(anthropicService, openaiService)
		wsService := service.NewWebSocketService(chatService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler(cfg.AllowedOrigin)
		ocrHandler := handler.NewOCRHandler(extractService, cfg.MaxUploadSize)
		chatHandler := handler.NewChatHandler(chatService)
		healthHandler := handler.NewHealthHandler()

		// Setup Gin router
		router := gin.Default()
		router.MaxMultipartMemory = cfg.MaxUploadSize

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/health", healthHandler.HandleHealth)
		router.GET("/ws/chat", gin.WrapF(wsService.HandleChat))

		api := router.Group("/api")
		{
			api.POST("/ocr", ocrHandler.HandleOCR)
			api.POST("/chat", chatHandler.HandleChat)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
