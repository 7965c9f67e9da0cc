package mealplan

import (
	"sort"
	"strings"
)

// IngredientSet is a set of normalized ingredient name tokens.
type IngredientSet map[string]struct{}

// NormalizeIngredients splits a comma-separated ingredient list into a set of
// lowercase trimmed tokens. Empty segments are dropped; duplicates merge.
func NormalizeIngredients(raw string) IngredientSet {
	set := make(IngredientSet)
	for _, token := range strings.Split(raw, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the normalized form of name.
func (s IngredientSet) Has(name string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Names returns the tokens in sorted order, for prompts and logging.
func (s IngredientSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
