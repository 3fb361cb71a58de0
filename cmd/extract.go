/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf-chatbot-be/config"
	"github.com/tieubaoca/pdf-chatbot-be/service"
	"github.com/tieubaoca/pdf-chatbot-be/types"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract text from PDF files",
	Long: `Extracts plain text from one or more PDF files using the declared provider.
Files are processed one at a time, in argument order; a failure on one file
is reported and does not abort the remaining files.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		providerName, _ := cmd.Flags().GetString("provider")
		modelName, _ := cmd.Flags().GetString("model")

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		provider, err := types.ParseProvider(providerName)
		if err != nil {
			log.Fatalf("Failed to parse provider: %v", err)
		}

		timeout := time.Duration(cfg.RequestTimeout) * time.Second
		anthropicService := service.NewAnthropicService(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.AnthropicModel, timeout)
		extractService := service.NewExtractService(anthropicService, service.NewPDFService())

		for _, path := range args {
			fileBytes, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				continue
			}

			text, err := extractService.Extract(context.Background(), fileBytes, provider, modelName)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				continue
			}

			doc := types.NewDocument(filepath.Base(path), int64(len(fileBytes)), text, provider)
			fmt.Printf("%s (%s): %d characters extracted\n", doc.Name, doc.SizeLabel, len(doc.ExtractedText))
			fmt.Println(doc.ExtractedText)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	extractCmd.Flags().StringP("provider", "p", string(types.ProviderOpenAI), "extraction provider (Anthropic or OpenAI)")
	extractCmd.Flags().StringP("model", "m", "", "model to use for the multimodal provider")
}
