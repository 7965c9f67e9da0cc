package common

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// UsedIngredient is an ingredient a recipe shares with the search query.
type UsedIngredient struct {
	Name string `json:"name"`
}

// MissedIngredient is an ingredient a recipe requires but the query did not
// supply. Amount stays a json.Number so an absent amount renders as "".
type MissedIngredient struct {
	Name   string      `json:"name"`
	Amount json.Number `json:"amount,omitempty"`
	Unit   string      `json:"unit,omitempty"`
}

// Quantity renders the amount and unit as a single display string, e.g.
// "2 pcs". Either part may be missing; the result is trimmed.
func (m MissedIngredient) Quantity() string {
	return strings.TrimSpace(string(m.Amount) + " " + m.Unit)
}

// RecipeCandidate is one recipe returned by the ingredient search.
type RecipeCandidate struct {
	ID                int64              `json:"id"`
	Title             string             `json:"title"`
	Image             string             `json:"image"`
	UsedIngredients   []UsedIngredient   `json:"usedIngredients"`
	MissedIngredients []MissedIngredient `json:"missedIngredients"`
}

// RecipeSummary is one recipe returned by the diet-aware complex search.
type RecipeSummary struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	SourceURL      string `json:"sourceUrl"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9\- ]`)
var spacePattern = regexp.MustCompile(`\s+`)

// SourceURL builds the public recipe page URL from the title and id.
func (r RecipeCandidate) SourceURL() string {
	s := slugPattern.ReplaceAllString(strings.ToLower(r.Title), "")
	s = spacePattern.ReplaceAllString(s, "-")
	return fmt.Sprintf("https://spoonacular.com/recipes/%s-%d", s, r.ID)
}

// Weekdays labels plan slots, Monday-first.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
