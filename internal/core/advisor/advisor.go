package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrorMarker prefixes tip text produced from a failed upstream call so the
// display layer can render it inline as a degraded value.
const ErrorMarker = "⚠️"

// Advisor produces free-text cooking advice. Implementations must never
// return an error: a failed call degrades to inline text carrying
// ErrorMarker.
type Advisor interface {
	// SubstitutionTip suggests a substitution for a single ingredient.
	SubstitutionTip(ctx context.Context, ingredient string) string

	// PantryTip gives nutrition and usage advice for a comma-separated
	// ingredient list.
	PantryTip(ctx context.Context, ingredients string) string
}

// Noop is the disabled-tips implementation.
type Noop struct{}

func (Noop) SubstitutionTip(ctx context.Context, ingredient string) string { return "" }
func (Noop) PantryTip(ctx context.Context, ingredients string) string      { return "" }

// Generator abstracts the generative-text backend.
type Generator interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// TipService asks a generative-text backend for advice, consulting the tip
// cache first when one is configured.
type TipService struct {
	config    *config.Config
	generator Generator
	cache     TipCache
}

// NewTipService creates a tip service. cache may be nil.
func NewTipService(cfg *config.Config, generator Generator, cache TipCache) *TipService {
	return &TipService{
		config:    cfg,
		generator: generator,
		cache:     cache,
	}
}

// SubstitutionTip implements Advisor.
func (s *TipService) SubstitutionTip(ctx context.Context, ingredient string) string {
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return ""
	}
	prompt := fmt.Sprintf(
		"Suggest one common substitution for %q in home cooking, with a one-line nutrition note. Answer in at most two short sentences of plain text.",
		ingredient)
	return s.ask(ctx, prompt)
}

// PantryTip implements Advisor.
func (s *TipService) PantryTip(ctx context.Context, ingredients string) string {
	ingredients = strings.TrimSpace(ingredients)
	if ingredients == "" {
		return ""
	}
	prompt := fmt.Sprintf(
		"I have these ingredients at home: %s. Give two short tips on using them up during a week of cooking, including one nutrition note. Plain text, at most three sentences.",
		ingredients)
	return s.ask(ctx, prompt)
}

// ask runs one prompt through cache and backend. Failures are converted to a
// marked inline string and never propagate.
func (s *TipService) ask(ctx context.Context, prompt string) string {
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, prompt); err == nil && val != "" {
			return val
		}
	}

	start := time.Now()
	content, err := s.generator.GenerateResponse(ctx, prompt)
	common.LogUpstreamCall("openrouter", time.Since(start), err, "")
	if err != nil {
		common.LogWarn("tip generation degraded to inline error",
			zap.Error(err),
		)
		return fmt.Sprintf("%s tip unavailable: %v", ErrorMarker, err)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Sprintf("%s tip unavailable: empty response", ErrorMarker)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, prompt, content)
	}

	return content
}
