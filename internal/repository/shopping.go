package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
)

// ShoppingList defines the interface for shopping list persistence
type ShoppingList interface {
	// CreateList inserts the list and all of its items in one transaction.
	CreateList(ctx context.Context, list *domain.ShoppingList) error
	GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error)
	GetListsForMenu(ctx context.Context, menuID uuid.UUID) ([]domain.ShoppingList, error)
	SetItemPurchased(ctx context.Context, listID, itemID uuid.UUID, purchased bool) error
}
