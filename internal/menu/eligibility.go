package menu

import (
	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
)

// Filter holds the constraints a recipe must satisfy to be assigned to a
// slot. The meal-type/audience match is already guaranteed by the candidate
// query; this filter covers everything on top of it.
type Filter struct {
	RequiredTags       []domain.DietaryTag
	ExcludeRecipeIDs   map[uuid.UUID]bool
	ExcludeIngredients []string
}

// Matches reports whether the recipe passes the filter.
func (f Filter) Matches(recipe *domain.Recipe) bool {
	if f.ExcludeRecipeIDs[recipe.ID] {
		return false
	}
	if !recipe.HasTags(f.RequiredTags) {
		return false
	}
	for _, excluded := range f.ExcludeIngredients {
		if recipe.UsesIngredientMatching(excluded) {
			return false
		}
	}
	return true
}

// eligibleRecipes returns the candidates passing the filter, preserving the
// input order so selection indexes are stable for a seeded picker.
func eligibleRecipes(candidates []domain.Recipe, f Filter) []domain.Recipe {
	var eligible []domain.Recipe
	for i := range candidates {
		if f.Matches(&candidates[i]) {
			eligible = append(eligible, candidates[i])
		}
	}
	return eligible
}
