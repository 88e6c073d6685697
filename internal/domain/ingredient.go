package domain

import "github.com/google/uuid"

// Ingredient is a canonical pantry item referenced by recipes and shopping
// list items.
type Ingredient struct {
	ID          uuid.UUID `json:"ingredient_id"`
	Name        string    `json:"name"`
	DefaultUnit string    `json:"default_unit"`
	CategoryID  uuid.UUID `json:"category_id"`
	Category    *Category `json:"category,omitempty"`
}

// Category groups ingredients for display (e.g. "Produce", "Dairy"). It has
// no effect on aggregation logic.
type Category struct {
	ID        uuid.UUID `json:"category_id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}
