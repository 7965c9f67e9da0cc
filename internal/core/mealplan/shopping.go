package mealplan

import (
	"strings"

	"meal-planner/internal/pkg/common"
)

// ShoppingItem is one missing ingredient to purchase. Tip is filled in later
// by the advisor stage when substitution tips are requested.
type ShoppingItem struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Tip    string `json:"tip,omitempty"`
}

// BuildShoppingList scans the plan's missed ingredients in plan order and
// returns the deduplicated purchases, encounter order preserved. The first
// occurrence of a name wins even when a later recipe lists a different
// quantity; anything already in the pantry is excluded.
func BuildShoppingList(plan []common.RecipeCandidate, pantry IngredientSet) []ShoppingItem {
	seen := make(map[string]struct{})
	items := make([]ShoppingItem, 0)

	for _, recipe := range plan {
		for _, missed := range recipe.MissedIngredients {
			name := strings.ToLower(strings.TrimSpace(missed.Name))
			if name == "" {
				continue
			}
			if _, inPantry := pantry[name]; inPantry {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			items = append(items, ShoppingItem{
				Name:   name,
				Amount: missed.Quantity(),
			})
		}
	}

	return items
}
