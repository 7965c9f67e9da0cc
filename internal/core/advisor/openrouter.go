package advisor

import (
	"context"
	"fmt"
	"net/http"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// OpenRouterService is the generative-text backend used for advisory tips.
type OpenRouterService struct {
	config *config.Config
	client *resty.Client
}

// NewOpenRouterService creates an OpenRouter client.
func NewOpenRouterService(cfg *config.Config) *OpenRouterService {
	client := resty.New().
		SetBaseURL(cfg.OpenRouter.BaseURL).
		SetTimeout(cfg.OpenRouter.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenRouter.APIKey)).
		SetHeader("X-Title", "Meal Planner")

	return &OpenRouterService{
		config: cfg,
		client: client,
	}
}

// GenerateResponse sends one chat-completion request and returns the first
// choice's content.
func (s *OpenRouterService) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	req := map[string]interface{}{
		"model": s.config.OpenRouter.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"max_tokens": s.config.OpenRouter.MaxTokens,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("OpenRouter API returned error: %s", resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenRouter response")
	}

	return result.Choices[0].Message.Content, nil
}
