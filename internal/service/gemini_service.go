package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/interview-prep/internal/config"
	"google.golang.org/genai"
)

type GeminiService struct {
	Client         *genai.Client
	Model          string
	RequestTimeout time.Duration
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:         client,
		Model:          cfg.Model,
		RequestTimeout: 90 * time.Second,
	}, nil
}

// Generate sends prompt once. Failures are returned as *GenerationError and never retried.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.Client.Models.GenerateContent(
		timeoutCtx,
		s.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.4)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", &GenerationError{Provider: config.ProviderGemini, Err: err}
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", &GenerationError{Provider: config.ProviderGemini, Err: err}
	}

	text := result.Text()
	log.Printf("Gemini %s answered in %v (%d chars)", s.Model, time.Since(start).Round(time.Millisecond), len(text))
	return text, nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil (finish reason %s)", resp.Candidates[0].FinishReason)
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
