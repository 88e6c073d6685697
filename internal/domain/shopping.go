package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingList holds the aggregated purchases for one menu. Each aggregation
// run produces a fresh list; older lists for the same menu stay readable.
type ShoppingList struct {
	ID        uuid.UUID          `json:"shopping_list_id"`
	MenuID    uuid.UUID          `json:"menu_id"`
	UserID    uuid.UUID          `json:"user_id"`
	Items     []ShoppingListItem `json:"items"`
	CreatedAt time.Time          `json:"created_at,omitempty"`
}

// ShoppingListItem is one aggregated (ingredient, unit) entry. Quantities for
// the same ingredient in a different unit are recorded in Notes rather than
// converted.
type ShoppingListItem struct {
	ID             uuid.UUID `json:"item_id"`
	ShoppingListID uuid.UUID `json:"shopping_list_id"`
	IngredientID   uuid.UUID `json:"ingredient_id"`
	IngredientName string    `json:"ingredient_name"`
	CategoryName   string    `json:"category_name,omitempty"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	IsPurchased    bool      `json:"is_purchased"`
	Notes          string    `json:"notes,omitempty"`
}
