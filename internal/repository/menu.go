package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
)

// Menu defines the interface for menu persistence
type Menu interface {
	CreateMenu(ctx context.Context, menu *domain.Menu) error
	GetMenu(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error)
	// GetMenuWithRecipes loads the full meal -> recipe -> ingredient graph
	// needed by shopping aggregation.
	GetMenuWithRecipes(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error)
	GetActiveMenu(ctx context.Context, userID uuid.UUID) (*domain.Menu, error)
	// ReplaceMeals atomically deletes the menu's meals and inserts the new
	// set in a single transaction, so no reader observes a half-regenerated
	// menu.
	ReplaceMeals(ctx context.Context, menuID uuid.UUID, meals []domain.Meal) error
	// DeactivateMenus clears the active flag on all of the user's menus.
	DeactivateMenus(ctx context.Context, userID uuid.UUID) error
}
