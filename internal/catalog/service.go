package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/logger"
	"github.com/famplan/famplan-server/internal/repository"
)

// Service defines the interface for recipe catalog operations
type Service interface {
	// CreateRecipe validates and persists a recipe. Ingredient lines may
	// reference an ingredient by ID or by name; names are resolved against
	// the ingredient catalog before the insert.
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	GetRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type service struct {
	repo repository.Recipe
}

// NewService creates a new catalog service
func NewService(repo repository.Recipe) Service {
	return &service{repo: repo}
}

func (s *service) CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateRecipeCalled, "name", recipe.Name)

	if recipe.Name == "" || len(recipe.Ingredients) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	for i := range recipe.Ingredients {
		line := &recipe.Ingredients[i]
		if line.Quantity <= 0 || line.Unit == "" {
			return nil, domain.ErrInvalidInput
		}
		if line.IngredientID == uuid.Nil {
			if line.Ingredient == nil || line.Ingredient.Name == "" {
				return nil, domain.ErrInvalidInput
			}
			ing, err := s.repo.GetIngredientByName(ctx, line.Ingredient.Name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetIngredient, err)
			}
			line.IngredientID = ing.ID
			line.Ingredient = ing
		}
		line.Position = i
	}

	if err := s.repo.CreateRecipe(ctx, recipe); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToCreateRecipe, err)
	}

	log.Info(LogMsgRecipeCreated, "recipe_id", recipe.ID, "name", recipe.Name)
	return recipe, nil
}

func (s *service) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	recipe, err := s.repo.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetRecipe, err)
	}
	return recipe, nil
}

func (s *service) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToListRecipes, err)
	}
	return recipes, nil
}

func (s *service) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	ingredients, err := s.repo.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToListIngredients, err)
	}
	return ingredients, nil
}

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToListCategories, err)
	}
	return categories, nil
}
