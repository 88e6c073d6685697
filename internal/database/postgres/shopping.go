package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/famplan/famplan-server/internal/domain"
)

// ShoppingListRepository implements the shopping list repository for PostgreSQL
type ShoppingListRepository struct {
	db *pgxpool.Pool
}

// NewShoppingListRepository creates a new ShoppingListRepository
func NewShoppingListRepository(db *pgxpool.Pool) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// CreateList inserts the list and all of its items in one transaction
func (r *ShoppingListRepository) CreateList(ctx context.Context, list *domain.ShoppingList) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxBeginTx, err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO shopping_lists (menu_id, user_id)
		VALUES ($1, $2)
		RETURNING shopping_list_id, created_at
	`
	if err := tx.QueryRow(ctx, query, list.MenuID, list.UserID).Scan(&list.ID, &list.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrCtxInsertList, err)
	}

	itemQuery := `
		INSERT INTO shopping_list_items (item_id, shopping_list_id, ingredient_id, quantity, unit, is_purchased, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i := range list.Items {
		item := &list.Items[i]
		item.ShoppingListID = list.ID
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		if _, err := tx.Exec(ctx, itemQuery,
			item.ID, list.ID, item.IngredientID, item.Quantity, item.Unit, item.IsPurchased, item.Notes); err != nil {
			return fmt.Errorf("%s: %w", ErrCtxInsertListItem, err)
		}
	}

	return tx.Commit(ctx)
}

// GetList fetches a shopping list with its items, each carrying the
// ingredient name and display category for client-side grouping.
func (r *ShoppingListRepository) GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error) {
	var list domain.ShoppingList
	err := r.db.QueryRow(ctx,
		`SELECT shopping_list_id, menu_id, user_id, created_at FROM shopping_lists WHERE shopping_list_id = $1`,
		listID,
	).Scan(&list.ID, &list.MenuID, &list.UserID, &list.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShoppingListNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryList, err)
	}

	items, err := r.loadItems(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	list.Items = items

	return &list, nil
}

// GetListsForMenu fetches all shopping lists generated for a menu, newest first
func (r *ShoppingListRepository) GetListsForMenu(ctx context.Context, menuID uuid.UUID) ([]domain.ShoppingList, error) {
	rows, err := r.db.Query(ctx,
		`SELECT shopping_list_id, menu_id, user_id, created_at FROM shopping_lists WHERE menu_id = $1 ORDER BY created_at DESC`,
		menuID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryList, err)
	}
	defer rows.Close()

	var lists []domain.ShoppingList
	for rows.Next() {
		var list domain.ShoppingList
		if err := rows.Scan(&list.ID, &list.MenuID, &list.UserID, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCtxQueryList, err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryList, err)
	}

	for i := range lists {
		items, err := r.loadItems(ctx, lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].Items = items
	}

	return lists, nil
}

// SetItemPurchased toggles the purchased flag on one item
func (r *ShoppingListRepository) SetItemPurchased(ctx context.Context, listID, itemID uuid.UUID, purchased bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE shopping_list_items SET is_purchased = $1 WHERE shopping_list_id = $2 AND item_id = $3`,
		purchased, listID, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxUpdateListItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListItemNotFound
	}
	return nil
}

func (r *ShoppingListRepository) loadItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingListItem, error) {
	query := `
		SELECT sli.item_id, sli.shopping_list_id, sli.ingredient_id, sli.quantity, sli.unit,
		       sli.is_purchased, sli.notes, i.ingredient_name, c.category_name
		FROM shopping_list_items sli
		JOIN ingredients i ON sli.ingredient_id = i.ingredient_id
		JOIN categories c ON i.category_id = c.category_id
		WHERE sli.shopping_list_id = $1
		ORDER BY c.sort_order, i.ingredient_name
	`
	rows, err := r.db.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryListItems, err)
	}
	defer rows.Close()

	var items []domain.ShoppingListItem
	for rows.Next() {
		var item domain.ShoppingListItem
		if err := rows.Scan(&item.ID, &item.ShoppingListID, &item.IngredientID, &item.Quantity,
			&item.Unit, &item.IsPurchased, &item.Notes, &item.IngredientName, &item.CategoryName); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCtxQueryListItems, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryListItems, err)
	}

	return items, nil
}
