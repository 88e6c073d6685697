package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipe represents a dish in the catalog. Ingredient quantities are
// calibrated for Servings portions.
type Recipe struct {
	ID          uuid.UUID          `json:"recipe_id"`
	Name        string             `json:"name"`
	MealType    MealType           `json:"meal_type"`
	Audience    Audience           `json:"audience"`
	Servings    int                `json:"servings"`
	DietaryTags []DietaryTag       `json:"dietary_tags"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	CreatedAt   time.Time          `json:"created_at,omitempty"`
}

// RecipeIngredient is a single line of a recipe's ingredient list.
type RecipeIngredient struct {
	IngredientID uuid.UUID   `json:"ingredient_id"`
	Ingredient   *Ingredient `json:"ingredient,omitempty"`
	Quantity     float64     `json:"quantity"`
	Unit         string      `json:"unit"`
	Notes        string      `json:"notes,omitempty"`
	Position     int         `json:"position"`
}

// HasTags reports whether the recipe carries every tag in required.
func (r *Recipe) HasTags(required []DietaryTag) bool {
	for _, want := range required {
		found := false
		for _, got := range r.DietaryTags {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// UsesIngredientMatching reports whether any ingredient name contains the
// given substring, case-insensitive. Used for user exclusion preferences.
func (r *Recipe) UsesIngredientMatching(substring string) bool {
	needle := strings.ToLower(substring)
	for _, ri := range r.Ingredients {
		if ri.Ingredient == nil {
			continue
		}
		if strings.Contains(strings.ToLower(ri.Ingredient.Name), needle) {
			return true
		}
	}
	return false
}

// Validate checks the recipe invariants before persistence.
func (r *Recipe) Validate() error {
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	if !r.MealType.Valid() {
		return ErrInvalidMealType
	}
	if !r.Audience.Valid() {
		return ErrInvalidAudience
	}
	for _, tag := range r.DietaryTags {
		if !tag.Valid() {
			return ErrInvalidTag
		}
	}
	return nil
}
