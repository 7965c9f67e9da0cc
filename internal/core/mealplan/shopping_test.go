package mealplan

import (
	"encoding/json"
	"testing"

	"meal-planner/internal/pkg/common"

	"github.com/stretchr/testify/assert"
)

func missed(name, amount, unit string) common.MissedIngredient {
	return common.MissedIngredient{
		Name:   name,
		Amount: json.Number(amount),
		Unit:   unit,
	}
}

func TestBuildShoppingListFirstOccurrenceWins(t *testing.T) {
	plan := []common.RecipeCandidate{
		{Title: "Omelette", MissedIngredients: []common.MissedIngredient{
			missed("egg", "2", "pcs"),
		}},
		{Title: "Pancakes", MissedIngredients: []common.MissedIngredient{
			missed("Egg", "3", "pcs"),
			missed("flour", "200", "g"),
		}},
	}

	items := BuildShoppingList(plan, IngredientSet{})

	assert.Len(t, items, 2)
	assert.Equal(t, "egg", items[0].Name)
	assert.Equal(t, "2 pcs", items[0].Amount)
	assert.Equal(t, "flour", items[1].Name)
	assert.Equal(t, "200 g", items[1].Amount)
}

func TestBuildShoppingListExcludesPantry(t *testing.T) {
	plan := []common.RecipeCandidate{
		{Title: "Fried Rice", MissedIngredients: []common.MissedIngredient{
			missed("soy sauce", "1", "tbsp"),
			missed("rice", "200", "g"),
		}},
	}

	items := BuildShoppingList(plan, NormalizeIngredients("rice, egg"))

	assert.Len(t, items, 1)
	assert.Equal(t, "soy sauce", items[0].Name)
}

func TestBuildShoppingListPreservesEncounterOrder(t *testing.T) {
	plan := []common.RecipeCandidate{
		{Title: "A", MissedIngredients: []common.MissedIngredient{
			missed("butter", "50", "g"),
			missed("milk", "1", "cup"),
		}},
		{Title: "B", MissedIngredients: []common.MissedIngredient{
			missed("flour", "200", "g"),
			missed("milk", "2", "cups"),
		}},
	}

	items := BuildShoppingList(plan, IngredientSet{})

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"butter", "milk", "flour"}, names)
	assert.Equal(t, "1 cup", items[1].Amount)
}

func TestBuildShoppingListSkipsBlankNames(t *testing.T) {
	plan := []common.RecipeCandidate{
		{Title: "A", MissedIngredients: []common.MissedIngredient{
			missed("  ", "1", "pcs"),
			missed("salt", "", ""),
		}},
	}

	items := BuildShoppingList(plan, IngredientSet{})

	assert.Len(t, items, 1)
	assert.Equal(t, "salt", items[0].Name)
	assert.Equal(t, "", items[0].Amount)
}

func TestBuildShoppingListEmptyPlan(t *testing.T) {
	items := BuildShoppingList(nil, NormalizeIngredients("rice"))

	assert.NotNil(t, items)
	assert.Empty(t, items)
}
