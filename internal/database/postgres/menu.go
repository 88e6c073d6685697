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

// MenuRepository implements the menu repository for PostgreSQL
type MenuRepository struct {
	db *pgxpool.Pool
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{db: db}
}

// CreateMenu inserts a new menu. When the menu is active, the user's prior
// active menu is deactivated in the same transaction so the one-active-menu
// invariant holds.
func (r *MenuRepository) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxBeginTx, err)
	}
	defer tx.Rollback(ctx)

	if menu.Active {
		if _, err := tx.Exec(ctx,
			`UPDATE menus SET is_active = FALSE WHERE user_id = $1 AND is_active`,
			menu.UserID); err != nil {
			return fmt.Errorf("%s: %w", ErrCtxDeactivateMenus, err)
		}
	}

	query := `
		INSERT INTO menus (user_id, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING menu_id, created_at
	`
	if err := tx.QueryRow(ctx, query,
		menu.UserID, menu.StartDate, menu.EndDate, menu.Active,
	).Scan(&menu.ID, &menu.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrCtxInsertMenu, err)
	}

	return tx.Commit(ctx)
}

// GetMenu fetches a menu and its meals without recipe details
func (r *MenuRepository) GetMenu(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error) {
	menu, err := r.getMenuRow(ctx, menuID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT meal_id, menu_id, meal_date, meal_type, audience, recipe_id
		FROM meals
		WHERE menu_id = $1
		ORDER BY meal_date, meal_type, audience
	`
	rows, err := r.db.Query(ctx, query, menuID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryMeals, err)
	}
	defer rows.Close()

	for rows.Next() {
		var meal domain.Meal
		if err := rows.Scan(&meal.ID, &meal.MenuID, &meal.Date, &meal.MealType, &meal.Audience, &meal.RecipeID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCtxScanMeal, err)
		}
		menu.Meals = append(menu.Meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryMeals, err)
	}

	return menu, nil
}

// GetMenuWithRecipes fetches a menu with each assigned meal's recipe and
// ingredient graph loaded, as required by shopping aggregation.
func (r *MenuRepository) GetMenuWithRecipes(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error) {
	menu, err := r.GetMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}

	// Collect distinct recipe IDs; a recipe can appear on several days.
	recipeIDs := make([]uuid.UUID, 0, len(menu.Meals))
	seen := make(map[uuid.UUID]bool)
	for _, meal := range menu.Meals {
		if meal.RecipeID != nil && !seen[*meal.RecipeID] {
			seen[*meal.RecipeID] = true
			recipeIDs = append(recipeIDs, *meal.RecipeID)
		}
	}
	if len(recipeIDs) == 0 {
		return menu, nil
	}

	recipes, err := loadRecipes(ctx, r.db, `WHERE r.recipe_id = ANY($1)`, recipeIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*domain.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}
	for i := range menu.Meals {
		if id := menu.Meals[i].RecipeID; id != nil {
			menu.Meals[i].Recipe = byID[*id]
		}
	}

	return menu, nil
}

// GetActiveMenu fetches the user's currently active menu, or ErrMenuNotFound
// when none is active.
func (r *MenuRepository) GetActiveMenu(ctx context.Context, userID uuid.UUID) (*domain.Menu, error) {
	var menuID uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT menu_id FROM menus WHERE user_id = $1 AND is_active`, userID,
	).Scan(&menuID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryMenu, err)
	}
	return r.GetMenu(ctx, menuID)
}

// ReplaceMeals deletes the menu's meals and inserts the new set atomically
func (r *MenuRepository) ReplaceMeals(ctx context.Context, menuID uuid.UUID, meals []domain.Meal) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxBeginTx, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM meals WHERE menu_id = $1`, menuID); err != nil {
		return fmt.Errorf("%s: %w", ErrCtxDeleteMeals, err)
	}

	query := `
		INSERT INTO meals (meal_id, menu_id, meal_date, meal_type, audience, recipe_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, meal := range meals {
		if _, err := tx.Exec(ctx, query,
			meal.ID, menuID, meal.Date, meal.MealType, meal.Audience, meal.RecipeID); err != nil {
			return fmt.Errorf("%s: %w", ErrCtxInsertMeal, err)
		}
	}

	return tx.Commit(ctx)
}

// DeactivateMenus clears the active flag on all of the user's menus
func (r *MenuRepository) DeactivateMenus(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE menus SET is_active = FALSE WHERE user_id = $1 AND is_active`, userID); err != nil {
		return fmt.Errorf("%s: %w", ErrCtxDeactivateMenus, err)
	}
	return nil
}

func (r *MenuRepository) getMenuRow(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error) {
	query := `
		SELECT menu_id, user_id, start_date, end_date, is_active, created_at
		FROM menus
		WHERE menu_id = $1
	`
	var menu domain.Menu
	err := r.db.QueryRow(ctx, query, menuID).Scan(
		&menu.ID, &menu.UserID, &menu.StartDate, &menu.EndDate, &menu.Active, &menu.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryMenu, err)
	}
	return &menu, nil
}
