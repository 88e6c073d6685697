package shopping

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
)

// entry accumulates one ingredient across all meals. The first unit seen for
// an ingredient is its primary unit; quantities in other units are tracked
// separately and surfaced as notes, never converted.
type entry struct {
	ingredient *domain.Ingredient
	unit       string
	quantity   float64
	extraUnits []string           // other units in first-seen order
	extras     map[string]float64 // unit -> accumulated quantity
}

// aggregate walks every meal with an assigned recipe and produces one item
// per distinct ingredient, scaled to the household and merged per unit.
// Items come out in first-appearance order so repeated runs over an
// unchanged menu yield the same ingredient -> quantity mapping.
func aggregate(meals []domain.Meal, household *domain.User) []domain.ShoppingListItem {
	entries := make(map[uuid.UUID]*entry)
	var order []uuid.UUID

	for _, meal := range meals {
		if meal.Recipe == nil {
			continue
		}
		recipe := meal.Recipe
		if recipe.Servings <= 0 {
			continue
		}

		headcount := household.Headcount(meal.Audience)
		scale := float64(headcount) / float64(recipe.Servings)

		for _, line := range recipe.Ingredients {
			if line.Ingredient == nil {
				continue
			}
			scaled := line.Quantity * scale

			e, ok := entries[line.IngredientID]
			if !ok {
				e = &entry{
					ingredient: line.Ingredient,
					unit:       line.Unit,
					extras:     make(map[string]float64),
				}
				entries[line.IngredientID] = e
				order = append(order, line.IngredientID)
			}

			if line.Unit == e.unit {
				e.quantity += scaled
				continue
			}
			// Same ingredient, different unit: record it apart instead of
			// guessing a conversion.
			if _, seen := e.extras[line.Unit]; !seen {
				e.extraUnits = append(e.extraUnits, line.Unit)
			}
			e.extras[line.Unit] += scaled
		}
	}

	items := make([]domain.ShoppingListItem, 0, len(order))
	for _, id := range order {
		e := entries[id]
		item := domain.ShoppingListItem{
			IngredientID:   id,
			IngredientName: e.ingredient.Name,
			Quantity:       ceilToTenth(e.quantity),
			Unit:           e.unit,
			IsPurchased:    false,
			Notes:          formatExtras(e),
		}
		if e.ingredient.Category != nil {
			item.CategoryName = e.ingredient.Category.Name
		}
		items = append(items, item)
	}

	return items
}

// ceilToTenth rounds up to one decimal place. Shopping quantities are never
// rounded below what is needed. A tolerance absorbs float noise so that a
// value like 150.0000000002 does not round up to 150.1.
func ceilToTenth(q float64) float64 {
	scaled := q * 10
	if nearest := math.Round(scaled); math.Abs(scaled-nearest) < 1e-9 {
		scaled = nearest
	}
	return math.Ceil(scaled) / 10
}

// formatExtras renders the mixed-unit remainders as a human-readable note,
// e.g. "+0.5 cup; +2 piece".
func formatExtras(e *entry) string {
	if len(e.extraUnits) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.extraUnits))
	for _, unit := range e.extraUnits {
		parts = append(parts, fmt.Sprintf("+%v %s", ceilToTenth(e.extras[unit]), unit))
	}
	return strings.Join(parts, "; ")
}
