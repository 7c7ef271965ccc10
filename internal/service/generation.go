package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/interview-prep/internal/config"
)

// GenerationClient turns a prompt into one text completion.
type GenerationClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationError wraps any failure of the hosted model: transport, auth,
// quota or an empty completion.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationClient builds the client for the configured provider.
func NewGenerationClient(ctx context.Context, gen *config.GenerationConfig, gemini *config.GeminiConfig, openRouter *config.OpenRouterConfig) (GenerationClient, error) {
	if err := config.ValidateGeneration(gen, gemini, openRouter); err != nil {
		return nil, err
	}
	switch gen.Provider {
	case config.ProviderOpenRouter:
		return NewOpenRouterService(openRouter), nil
	default:
		return NewGeminiService(ctx, gemini)
	}
}
