package spoonacular

import (
	"context"
	"fmt"
	"strconv"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client calls the Spoonacular recipe-search API. One attempt per call; a
// failed request surfaces immediately with the upstream status and body.
type Client struct {
	config *config.Config
	client *resty.Client
}

// SearchRequest holds the diet-aware complex-search parameters.
type SearchRequest struct {
	Diet               string
	IncludeIngredients string
	ExcludeIngredients string
	MaxReadyTime       int
	Number             int
}

// NewClient creates a Spoonacular client.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Spoonacular.BaseURL).
		SetTimeout(cfg.Spoonacular.Timeout)

	return &Client{
		config: cfg,
		client: client,
	}
}

// FindByIngredients searches recipes by the user's available ingredients.
// Results arrive ranked to maximise used ingredients; pantry staples are
// ignored upstream. Candidates with absent ingredient arrays decode to empty
// slices and flow through.
func (c *Client) FindByIngredients(ctx context.Context, ingredients string, number int) ([]common.RecipeCandidate, error) {
	if number <= 0 {
		number = c.config.Spoonacular.DefaultNumber
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apiKey":       c.config.Spoonacular.APIKey,
			"ingredients":  ingredients,
			"number":       strconv.Itoa(number),
			"ranking":      "1",
			"ignorePantry": "true",
		}).
		Get("/recipes/findByIngredients")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to Spoonacular: %w", err)
	}

	if resp.IsError() {
		common.LogError("recipe search failed",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return nil, common.NewUpstreamError("Spoonacular", resp.StatusCode(), resp.String())
	}

	var candidates []common.RecipeCandidate
	if err := common.ParseJSONBytes(resp.Body(), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse Spoonacular response: %w", err)
	}

	common.LogDebug("recipe candidates fetched",
		zap.Int("count", len(candidates)),
	)

	return candidates, nil
}

// ComplexSearch runs the diet-aware search variant with full recipe
// information attached.
func (c *Client) ComplexSearch(ctx context.Context, req SearchRequest) ([]common.RecipeSummary, error) {
	number := req.Number
	if number <= 0 {
		number = c.config.Spoonacular.DefaultNumber
	}

	params := map[string]string{
		"apiKey":               c.config.Spoonacular.APIKey,
		"includeIngredients":   req.IncludeIngredients,
		"excludeIngredients":   req.ExcludeIngredients,
		"number":               strconv.Itoa(number),
		"addRecipeInformation": "true",
	}
	// "none" means no diet filter at all.
	if req.Diet != "" && req.Diet != "none" {
		params["diet"] = req.Diet
	}
	if req.MaxReadyTime > 0 {
		params["maxReadyTime"] = strconv.Itoa(req.MaxReadyTime)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/recipes/complexSearch")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to Spoonacular: %w", err)
	}

	if resp.IsError() {
		common.LogError("complex search failed",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return nil, common.NewUpstreamError("Spoonacular", resp.StatusCode(), resp.String())
	}

	var result struct {
		Results []common.RecipeSummary `json:"results"`
	}
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse Spoonacular response: %w", err)
	}

	return result.Results, nil
}
