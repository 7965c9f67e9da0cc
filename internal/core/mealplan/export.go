package mealplan

import (
	"fmt"
	"strings"

	"meal-planner/internal/pkg/common"
)

// PlanEntry is one day of a generated weekly plan.
type PlanEntry struct {
	Day             string   `json:"day"`
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Image           string   `json:"image"`
	SourceURL       string   `json:"source_url"`
	UsedIngredients []string `json:"used_ingredients"`
}

// RenderPlanText produces the downloadable weekly-plan text, one line per
// day: "Monday: Fried Rice".
func RenderPlanText(entries []PlanEntry) string {
	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("%s: %s\n", entry.Day, entry.Title))
	}
	return sb.String()
}

// RenderShoppingText produces the downloadable shopping-list text, one line
// per item: "- egg: 2 pcs", with the substitution tip appended when present.
func RenderShoppingText(items []ShoppingItem) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s: %s", item.Name, item.Amount))
		if item.Tip != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", item.Tip))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// planEntries maps selected candidates onto Monday-first day slots.
func planEntries(plan []common.RecipeCandidate) []PlanEntry {
	entries := make([]PlanEntry, 0, len(plan))
	for i, recipe := range plan {
		used := make([]string, 0, len(recipe.UsedIngredients))
		for _, ing := range recipe.UsedIngredients {
			used = append(used, ing.Name)
		}
		entries = append(entries, PlanEntry{
			Day:             common.Weekdays[i%len(common.Weekdays)],
			ID:              recipe.ID,
			Title:           recipe.Title,
			Image:           recipe.Image,
			SourceURL:       recipe.SourceURL(),
			UsedIngredients: used,
		})
	}
	return entries
}
