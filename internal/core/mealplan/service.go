package mealplan

import (
	"context"
	"strings"
	"sync"

	"meal-planner/internal/core/advisor"
	"meal-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeSearcher is the recipe-search collaborator boundary.
type RecipeSearcher interface {
	FindByIngredients(ctx context.Context, ingredients string, number int) ([]common.RecipeCandidate, error)
}

// PlanRequest is one user submission.
type PlanRequest struct {
	Ingredients string
	Number      int
	MaxDays     int
	WithTips    bool
}

// PlanResult is the outcome of one pipeline run. An empty Week is a valid
// no-matches outcome, not an error.
type PlanResult struct {
	Week         []PlanEntry    `json:"week"`
	ShoppingList []ShoppingItem `json:"shopping_list"`
	WasteScore   WasteScore     `json:"waste_score"`
	PantryTip    string         `json:"pantry_tip,omitempty"`
}

// Service runs the planning pipeline: fetch, select, aggregate, score and
// optionally annotate with advisory tips. State is fresh per call; nothing is
// persisted.
type Service struct {
	searcher   RecipeSearcher
	advisor    advisor.Advisor
	tipWorkers int
}

// NewService creates the pipeline service. Pass advisor.Noop{} when tips are
// disabled.
func NewService(searcher RecipeSearcher, adv advisor.Advisor, tipWorkers int) *Service {
	if tipWorkers <= 0 {
		tipWorkers = 1
	}
	return &Service{
		searcher:   searcher,
		advisor:    adv,
		tipWorkers: tipWorkers,
	}
}

// GenerateWeeklyPlan executes one submission. A recipe-search failure aborts
// the run; tip failures degrade to inline text on individual items.
func (s *Service) GenerateWeeklyPlan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	pantry := NormalizeIngredients(req.Ingredients)

	candidates, err := s.searcher.FindByIngredients(ctx, req.Ingredients, req.Number)
	if err != nil {
		return nil, err
	}

	maxDays := req.MaxDays
	if maxDays <= 0 || maxDays > MaxPlanSize {
		maxDays = MaxPlanSize
	}

	plan := SelectWeeklyPlan(candidates, pantry, maxDays)
	items := BuildShoppingList(plan, pantry)
	score := EstimateWasteScore(plan)

	common.LogInfo("weekly plan assembled",
		zap.Int("candidates", len(candidates)),
		zap.Int("selected", len(plan)),
		zap.Int("shopping_items", len(items)),
		zap.Int("waste_score", score.Score),
	)

	result := &PlanResult{
		Week:         planEntries(plan),
		ShoppingList: items,
		WasteScore:   score,
	}

	if req.WithTips && len(plan) > 0 {
		// The list is final before any tip is requested; tips are a side
		// read and cannot change dedup or ordering.
		s.fillSubstitutionTips(ctx, items)
		result.PantryTip = s.advisor.PantryTip(ctx, strings.Join(pantry.Names(), ", "))
	}

	return result, nil
}

// fillSubstitutionTips fans per-item tip requests out over a bounded worker
// pool. Each worker writes by index, so item order is untouched.
func (s *Service) fillSubstitutionTips(ctx context.Context, items []ShoppingItem) {
	if len(items) == 0 {
		return
	}

	workers := s.tipWorkers
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan int, len(items))
	for i := range items {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				items[i].Tip = s.advisor.SubstitutionTip(ctx, items[i].Name)
			}
		}()
	}
	wg.Wait()
}
