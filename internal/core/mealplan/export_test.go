package mealplan

import (
	"testing"

	"meal-planner/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func TestRenderPlanText(t *testing.T) {
	entries := []PlanEntry{
		{Day: "Monday", Title: "Fried Rice"},
		{Day: "Tuesday", Title: "Tomato Soup"},
	}

	text := RenderPlanText(entries)

	assert.Equal(t, "Monday: Fried Rice\nTuesday: Tomato Soup\n", text)
}

func TestRenderPlanTextEmpty(t *testing.T) {
	assert.Equal(t, "", RenderPlanText(nil))
}

func TestRenderShoppingText(t *testing.T) {
	items := []ShoppingItem{
		{Name: "egg", Amount: "2 pcs"},
		{Name: "flour", Amount: "200 g", Tip: "use oat flour for a gluten free bake"},
	}

	text := RenderShoppingText(items)

	assert.Equal(t, "- egg: 2 pcs\n- flour: 200 g (use oat flour for a gluten free bake)\n", text)
}

func TestPlanEntriesMondayFirst(t *testing.T) {
	plan := []common.RecipeCandidate{
		{ID: 1, Title: "Fried Rice", UsedIngredients: []common.UsedIngredient{{Name: "rice"}}},
		{ID: 2, Title: "Tomato Soup"},
		{ID: 3, Title: "Omelette"},
	}

	entries := planEntries(plan)

	assert.Len(t, entries, 3)
	assert.Equal(t, "Monday", entries[0].Day)
	assert.Equal(t, "Tuesday", entries[1].Day)
	assert.Equal(t, "Wednesday", entries[2].Day)
	assert.Equal(t, []string{"rice"}, entries[0].UsedIngredients)
	assert.Equal(t, "https://spoonacular.com/recipes/fried-rice-1", entries[0].SourceURL)
}

func TestPlanEntriesUsedIngredientsNeverNil(t *testing.T) {
	entries := planEntries([]common.RecipeCandidate{{ID: 9, Title: "Toast"}})

	assert.NotNil(t, entries[0].UsedIngredients)
	assert.Empty(t, entries[0].UsedIngredients)
}
