package mealplan

import (
	"strings"

	"meal-planner/internal/pkg/common"
)

// MaxPlanSize is the number of slots in a weekly plan, one per day.
const MaxPlanSize = 7

// SelectWeeklyPlan filters raw candidates into a bounded plan. Candidates are
// taken in arrival order; a title already selected is skipped, and a candidate
// is kept only when its usedIngredients overlap the pantry set. Matching is on
// exact lowercase ingredient names, not substrings, so results stay
// reproducible.
func SelectWeeklyPlan(candidates []common.RecipeCandidate, pantry IngredientSet, max int) []common.RecipeCandidate {
	if max <= 0 {
		max = MaxPlanSize
	}

	seenTitles := make(map[string]struct{}, max)
	plan := make([]common.RecipeCandidate, 0, max)

	for _, candidate := range candidates {
		if _, seen := seenTitles[candidate.Title]; seen {
			continue
		}

		if usesAnyOf(candidate, pantry) {
			plan = append(plan, candidate)
			seenTitles[candidate.Title] = struct{}{}
		}

		if len(plan) == max {
			break
		}
	}

	return plan
}

func usesAnyOf(candidate common.RecipeCandidate, pantry IngredientSet) bool {
	for _, used := range candidate.UsedIngredients {
		if _, ok := pantry[strings.ToLower(used.Name)]; ok {
			return true
		}
	}
	return false
}
