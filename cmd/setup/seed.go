package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type seedIngredient struct {
	name     string
	unit     string
	category string
}

type seedLine struct {
	ingredient string
	quantity   float64
	unit       string
}

type seedRecipe struct {
	name     string
	mealType string
	audience string
	servings int
	tags     []string
	lines    []seedLine
}

var seedCategories = []struct {
	name      string
	sortOrder int
}{
	{"Produce", 10},
	{"Meat & Fish", 20},
	{"Dairy & Eggs", 30},
	{"Grains & Pasta", 40},
	{"Pantry", 50},
}

var seedIngredients = []seedIngredient{
	{"chicken breast", "g", "Meat & Fish"},
	{"ground beef", "g", "Meat & Fish"},
	{"salmon fillet", "g", "Meat & Fish"},
	{"eggs", "pcs", "Dairy & Eggs"},
	{"milk", "ml", "Dairy & Eggs"},
	{"butter", "g", "Dairy & Eggs"},
	{"rice", "g", "Grains & Pasta"},
	{"pasta", "g", "Grains & Pasta"},
	{"bread", "slices", "Grains & Pasta"},
	{"tomato", "pcs", "Produce"},
	{"cucumber", "pcs", "Produce"},
	{"onion", "pcs", "Produce"},
	{"potato", "g", "Produce"},
	{"carrot", "g", "Produce"},
	{"olive oil", "ml", "Pantry"},
	{"tomato sauce", "ml", "Pantry"},
	{"lentils", "g", "Pantry"},
}

var seedRecipes = []seedRecipe{
	{
		name: "Chicken and rice", mealType: "dinner", audience: "both", servings: 4,
		tags: []string{"gluten_free", "dairy_free"},
		lines: []seedLine{
			{"chicken breast", 600, "g"},
			{"rice", 300, "g"},
			{"carrot", 200, "g"},
			{"olive oil", 30, "ml"},
		},
	},
	{
		name: "Pasta bolognese", mealType: "dinner", audience: "children", servings: 4,
		tags: []string{},
		lines: []seedLine{
			{"pasta", 400, "g"},
			{"ground beef", 400, "g"},
			{"tomato sauce", 250, "ml"},
			{"onion", 1, "pcs"},
		},
	},
	{
		name: "Baked salmon with potatoes", mealType: "dinner", audience: "adults", servings: 2,
		tags: []string{"gluten_free", "dairy_free"},
		lines: []seedLine{
			{"salmon fillet", 400, "g"},
			{"potato", 500, "g"},
			{"olive oil", 20, "ml"},
		},
	},
	{
		name: "Scrambled eggs on toast", mealType: "lunch", audience: "children", servings: 2,
		tags: []string{"vegetarian"},
		lines: []seedLine{
			{"eggs", 4, "pcs"},
			{"bread", 4, "slices"},
			{"butter", 20, "g"},
		},
	},
	{
		name: "Lentil soup", mealType: "lunch", audience: "both", servings: 4,
		tags: []string{"vegan", "gluten_free", "dairy_free"},
		lines: []seedLine{
			{"lentils", 300, "g"},
			{"carrot", 150, "g"},
			{"onion", 1, "pcs"},
			{"olive oil", 20, "ml"},
		},
	},
	{
		name: "Tomato cucumber salad", mealType: "lunch", audience: "adults", servings: 2,
		tags: []string{"vegan", "gluten_free", "dairy_free", "kosher"},
		lines: []seedLine{
			{"tomato", 3, "pcs"},
			{"cucumber", 2, "pcs"},
			{"olive oil", 15, "ml"},
		},
	},
}

// seedCatalog inserts a starter catalog. Re-running is safe: categories and
// ingredients upsert by name, recipes are skipped if a recipe with the same
// name already exists.
func seedCatalog(ctx context.Context, conn *pgx.Conn) error {
	for _, c := range seedCategories {
		_, err := conn.Exec(ctx,
			`INSERT INTO categories (category_name, sort_order) VALUES ($1, $2)
			 ON CONFLICT (category_name) DO UPDATE SET sort_order = EXCLUDED.sort_order`,
			c.name, c.sortOrder)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.name, err)
		}
	}

	for _, ing := range seedIngredients {
		_, err := conn.Exec(ctx,
			`INSERT INTO ingredients (ingredient_name, default_unit, category_id)
			 SELECT $1, $2, category_id FROM categories WHERE category_name = $3
			 ON CONFLICT (ingredient_name) DO NOTHING`,
			ing.name, ing.unit, ing.category)
		if err != nil {
			return fmt.Errorf("seed ingredient %q: %w", ing.name, err)
		}
	}

	for _, r := range seedRecipes {
		if err := seedOneRecipe(ctx, conn, r); err != nil {
			return fmt.Errorf("seed recipe %q: %w", r.name, err)
		}
	}
	return nil
}

func seedOneRecipe(ctx context.Context, conn *pgx.Conn, r seedRecipe) error {
	var exists bool
	err := conn.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM recipes WHERE recipe_name = $1)", r.name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var recipeID string
	err = tx.QueryRow(ctx,
		`INSERT INTO recipes (recipe_name, meal_type, audience, servings, dietary_tags)
		 VALUES ($1, $2, $3, $4, $5) RETURNING recipe_id`,
		r.name, r.mealType, r.audience, r.servings, r.tags).Scan(&recipeID)
	if err != nil {
		return err
	}

	for i, line := range r.lines {
		_, err = tx.Exec(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit, position)
			 SELECT $1, ingredient_id, $2, $3, $4 FROM ingredients WHERE ingredient_name = $5`,
			recipeID, line.quantity, line.unit, i, line.ingredient)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
