package config

import (
	"os"
	"sync"
)

const DefaultGeminiModel = "gemini-2.5-flash"

type GeminiConfig struct {
	APIKey string
	Model  string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = loadGeminiConfigFromEnv()
	})
	return geminiConfig
}

func loadGeminiConfigFromEnv() *GeminiConfig {
	// GOOGLE_API_KEY is what the hosted generative API documents; GEMINI_API_KEY is accepted too.
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiConfig{
		APIKey: apiKey,
		Model:  model,
	}
}
