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

// RecipeRepository implements the recipe catalog repository for PostgreSQL
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// CreateRecipe inserts a recipe and its ingredient lines in one transaction.
// Ingredient lines reference existing ingredients by ID.
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxBeginTx, err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO recipes (recipe_name, meal_type, audience, servings, dietary_tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING recipe_id, created_at
	`
	if err := tx.QueryRow(ctx, query,
		recipe.Name, recipe.MealType, recipe.Audience, recipe.Servings, tagsToStrings(recipe.DietaryTags),
	).Scan(&recipe.ID, &recipe.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrCtxInsertRecipe, err)
	}

	lineQuery := `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit, notes, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i, line := range recipe.Ingredients {
		if _, err := tx.Exec(ctx, lineQuery,
			recipe.ID, line.IngredientID, line.Quantity, line.Unit, line.Notes, i); err != nil {
			return fmt.Errorf("%s: %w", ErrCtxInsertRecipe, err)
		}
	}

	return tx.Commit(ctx)
}

// GetRecipeByID fetches a recipe with its ingredient list
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	recipes, err := loadRecipes(ctx, r.db, `WHERE r.recipe_id = ANY($1)`, []uuid.UUID{recipeID})
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, domain.ErrRecipeNotFound
	}
	return &recipes[0], nil
}

// ListRecipes fetches the whole catalog with ingredient lists
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return loadRecipes(ctx, r.db, ``)
}

// ListRecipesForSlot fetches recipes whose meal type matches the slot and
// whose audience serves the slot's audience, ingredient lists included.
func (r *RecipeRepository) ListRecipesForSlot(ctx context.Context, mealType domain.MealType, audience domain.Audience) ([]domain.Recipe, error) {
	return loadRecipes(ctx, r.db,
		`WHERE r.meal_type = $1 AND (r.audience = $2 OR r.audience = 'both')`,
		mealType, audience)
}

// ListIngredients fetches all ingredients with their categories
func (r *RecipeRepository) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	query := `
		SELECT i.ingredient_id, i.ingredient_name, i.default_unit, i.category_id,
		       c.category_name, c.sort_order
		FROM ingredients i
		JOIN categories c ON i.category_id = c.category_id
		ORDER BY c.sort_order, i.ingredient_name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryIngredients, err)
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, *ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryIngredients, err)
	}

	return ingredients, nil
}

// GetIngredientByName fetches one ingredient by its canonical name
func (r *RecipeRepository) GetIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	query := `
		SELECT i.ingredient_id, i.ingredient_name, i.default_unit, i.category_id,
		       c.category_name, c.sort_order
		FROM ingredients i
		JOIN categories c ON i.category_id = c.category_id
		WHERE i.ingredient_name = $1
	`
	row := r.db.QueryRow(ctx, query, name)
	ing, err := scanIngredient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return ing, nil
}

// ListCategories fetches the display categories in sort order
func (r *RecipeRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT category_id, category_name, sort_order FROM categories ORDER BY sort_order, category_name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryCategories, err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCtxQueryCategories, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryCategories, err)
	}

	return categories, nil
}

// scanIngredient scans one joined ingredient+category row
func scanIngredient(row pgx.Row) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	var cat domain.Category
	if err := row.Scan(&ing.ID, &ing.Name, &ing.DefaultUnit, &ing.CategoryID, &cat.Name, &cat.SortOrder); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrCtxScanIngredient, err)
	}
	cat.ID = ing.CategoryID
	ing.Category = &cat
	return &ing, nil
}

// loadRecipes fetches recipes matching the given WHERE clause, then attaches
// their ingredient lines in one follow-up query.
func loadRecipes(ctx context.Context, db *pgxpool.Pool, where string, args ...interface{}) ([]domain.Recipe, error) {
	query := fmt.Sprintf(`
		SELECT r.recipe_id, r.recipe_name, r.meal_type, r.audience, r.servings, r.dietary_tags, r.created_at
		FROM recipes r
		%s
		ORDER BY r.recipe_name
	`, where)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryRecipes, err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	byID := make(map[uuid.UUID]int)
	var ids []uuid.UUID
	for rows.Next() {
		var recipe domain.Recipe
		var tags []string
		if err := rows.Scan(&recipe.ID, &recipe.Name, &recipe.MealType, &recipe.Audience,
			&recipe.Servings, &tags, &recipe.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCtxScanRecipe, err)
		}
		recipe.DietaryTags = stringsToTags(tags)
		byID[recipe.ID] = len(recipes)
		ids = append(ids, recipe.ID)
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryRecipes, err)
	}
	if len(recipes) == 0 {
		return recipes, nil
	}

	lineQuery := `
		SELECT ri.recipe_id, ri.ingredient_id, ri.quantity, ri.unit, ri.notes, ri.position,
		       i.ingredient_name, i.default_unit, i.category_id, c.category_name, c.sort_order
		FROM recipe_ingredients ri
		JOIN ingredients i ON ri.ingredient_id = i.ingredient_id
		JOIN categories c ON i.category_id = c.category_id
		WHERE ri.recipe_id = ANY($1)
		ORDER BY ri.recipe_id, ri.position
	`
	lineRows, err := db.Query(ctx, lineQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryIngredients, err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var recipeID uuid.UUID
		var line domain.RecipeIngredient
		var ing domain.Ingredient
		var cat domain.Category
		if err := lineRows.Scan(&recipeID, &line.IngredientID, &line.Quantity, &line.Unit,
			&line.Notes, &line.Position, &ing.Name, &ing.DefaultUnit, &ing.CategoryID,
			&cat.Name, &cat.SortOrder); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCtxScanIngredient, err)
		}
		ing.ID = line.IngredientID
		cat.ID = ing.CategoryID
		ing.Category = &cat
		line.Ingredient = &ing

		idx, ok := byID[recipeID]
		if !ok {
			continue
		}
		recipes[idx].Ingredients = append(recipes[idx].Ingredients, line)
	}
	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryIngredients, err)
	}

	return recipes, nil
}
