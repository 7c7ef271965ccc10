package config

import (
	"os"
	"sync"
)

const DefaultOpenRouterModel = "openai/gpt-4o-mini"

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		openRouterConfig = loadOpenRouterConfigFromEnv()
	})
	return openRouterConfig
}

func loadOpenRouterConfigFromEnv() *OpenRouterConfig {
	model := os.Getenv("OPENROUTER_MODEL")
	if model == "" {
		model = DefaultOpenRouterModel
	}
	baseURL := os.Getenv("OPENROUTER_BASE_URL")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	return &OpenRouterConfig{
		APIKey:  os.Getenv("OPENROUTER_API_KEY"),
		Model:   model,
		BaseURL: baseURL,
	}
}
