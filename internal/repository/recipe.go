package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
)

// Recipe defines the interface for recipe catalog persistence
type Recipe interface {
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) error
	GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	// ListRecipesForSlot returns, with their ingredient lists loaded, all
	// recipes whose meal type matches and whose audience serves the slot's
	// audience. Eligibility filtering beyond that (tags, exclusions) is
	// service logic.
	ListRecipesForSlot(ctx context.Context, mealType domain.MealType, audience domain.Audience) ([]domain.Recipe, error)

	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	GetIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
