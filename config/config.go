package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"port"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
	MaxUploadSize int64  `mapstructure:"max_upload_size"`
	// RequestTimeout bounds every outbound provider call, in seconds.
	RequestTimeout   int    `mapstructure:"request_timeout"`
	AnthropicBaseURL string `mapstructure:"anthropic_base_url"`
	AnthropicModel   string `mapstructure:"anthropic_model"`
	AnthropicAPIKey  string `mapstructure:"ANTHROPIC_API_KEY"`
	OpenAIBaseURL    string `mapstructure:"openai_base_url"`
	OpenAIModel      string `mapstructure:"openai_model"`
	OpenAIAPIKey     string `mapstructure:"OPENAI_API_KEY"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Bind environment variables
	v.BindEnv("ANTHROPIC_API_KEY")
	v.BindEnv("OPENAI_API_KEY")

	// Read config file; a missing file is fine, defaults and env apply
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3001")
	v.SetDefault("allowed_origin", "http://localhost:3000")
	v.SetDefault("max_upload_size", 10<<20)
	v.SetDefault("request_timeout", 120)
	v.SetDefault("anthropic_base_url", "https://api.anthropic.com")
	v.SetDefault("anthropic_model", "claude-sonnet-4-20250514")
	v.SetDefault("openai_base_url", "https://api.openai.com/v1")
	v.SetDefault("openai_model", "gpt-4o")
}
