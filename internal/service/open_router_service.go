package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/interview-prep/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterSystemPrompt = "You are an AI assistant specializing in interview preparation. Reply with JSON only."

type OpenRouterService struct {
	APIKey  string
	Model   string
	BaseURL string
	client  *resty.Client
}

func NewOpenRouterService(cfg *config.OpenRouterConfig) *OpenRouterService {
	return &OpenRouterService{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  resty.New().SetTimeout(90 * time.Second),
	}
}

func (s *OpenRouterService) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": openRouterSystemPrompt},
				{"role": "user", "content": prompt},
			},
			"response_format": map[string]string{"type": "json_object"},
		}).
		Post(s.BaseURL + "/chat/completions")
	if err != nil {
		return "", &GenerationError{Provider: config.ProviderOpenRouter, Err: err}
	}

	body := resp.String()
	if resp.IsError() {
		msg := gjson.Get(body, "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", &GenerationError{
			Provider: config.ProviderOpenRouter,
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode(), msg),
		}
	}

	text := gjson.Get(body, "choices.0.message.content").String()
	if text == "" {
		return "", &GenerationError{Provider: config.ProviderOpenRouter, Err: fmt.Errorf("no completion in response")}
	}

	log.Printf("OpenRouter %s answered in %v (%d chars)", s.Model, resp.Time().Round(time.Millisecond), len(text))
	return text, nil
}
