package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

type GenerationConfig struct {
	Provider string
}

var (
	generationConfig *GenerationConfig
	generationOnce   sync.Once
)

func LoadGenerationConfig() *GenerationConfig {
	generationOnce.Do(func() {
		generationConfig = loadGenerationConfigFromEnv()
	})
	return generationConfig
}

func loadGenerationConfigFromEnv() *GenerationConfig {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("GENERATION_PROVIDER")))
	if provider == "" {
		provider = ProviderGemini
	}
	return &GenerationConfig{Provider: provider}
}

// ValidateGeneration fails when the selected provider is unknown or its API key is missing.
func ValidateGeneration(gen *GenerationConfig, gemini *GeminiConfig, openRouter *OpenRouterConfig) error {
	switch gen.Provider {
	case ProviderGemini:
		if gemini.APIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY not set")
		}
	case ProviderOpenRouter:
		if openRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY not set")
		}
	default:
		return fmt.Errorf("unknown GENERATION_PROVIDER %q", gen.Provider)
	}
	return nil
}
