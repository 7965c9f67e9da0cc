package mealplan

import (
	"fmt"
	"math"
	"strings"

	"meal-planner/internal/pkg/common"
)

// WasteScore rates how well a plan reuses purchased ingredients, 0-100.
type WasteScore struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// EstimateWasteScore counts, per missed-ingredient name, how many distinct
// recipes in the plan list it. Names used by only one recipe drag the score
// down. Counts are derived from the plan itself, not the deduplicated
// shopping list, so pantry exclusions do not affect the score.
func EstimateWasteScore(plan []common.RecipeCandidate) WasteScore {
	usage := make(map[string]int)
	for _, recipe := range plan {
		distinct := make(map[string]struct{})
		for _, missed := range recipe.MissedIngredients {
			name := strings.ToLower(strings.TrimSpace(missed.Name))
			if name == "" {
				continue
			}
			// A recipe listing the same name twice counts once.
			if _, ok := distinct[name]; ok {
				continue
			}
			distinct[name] = struct{}{}
			usage[name]++
		}
	}

	total := len(usage)
	if total == 0 {
		return WasteScore{
			Score:       100,
			Explanation: "no extra ingredients needed.",
		}
	}

	singleUse := 0
	for _, count := range usage {
		if count == 1 {
			singleUse++
		}
	}

	score := 100 - int(math.Round(100*float64(singleUse)/float64(total)))
	if score < 0 {
		score = 0
	}

	return WasteScore{
		Score:       score,
		Explanation: fmt.Sprintf("%d of %d shopping items are only used in one recipe.", singleUse, total),
	}
}
