package menu_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/event"
	"github.com/famplan/famplan-server/internal/menu"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

// StubMenuRepository returns a fresh week menu on every fetch so Generate can
// run repeatedly without state conflicts between iterations.
type StubMenuRepository struct {
	userID uuid.UUID
}

func (s *StubMenuRepository) CreateMenu(ctx context.Context, m *domain.Menu) error { return nil }
func (s *StubMenuRepository) GetMenu(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	return &domain.Menu{
		ID:        menuID,
		UserID:    s.userID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
		Active:    true,
	}, nil
}
func (s *StubMenuRepository) GetMenuWithRecipes(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error) {
	return s.GetMenu(ctx, menuID)
}
func (s *StubMenuRepository) GetActiveMenu(ctx context.Context, userID uuid.UUID) (*domain.Menu, error) {
	return s.GetMenu(ctx, uuid.New())
}
func (s *StubMenuRepository) ReplaceMeals(ctx context.Context, menuID uuid.UUID, meals []domain.Meal) error {
	return nil
}
func (s *StubMenuRepository) DeactivateMenus(ctx context.Context, userID uuid.UUID) error {
	return nil
}

// StubRecipeRepository serves a sizable catalog for every slot. Half the
// recipes are vegetarian so tag filtering has work to do.
type StubRecipeRepository struct {
	catalogSize int
}

func (s *StubRecipeRepository) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	return nil
}
func (s *StubRecipeRepository) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	return nil, domain.ErrRecipeNotFound
}
func (s *StubRecipeRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return nil, nil
}
func (s *StubRecipeRepository) ListRecipesForSlot(ctx context.Context, mealType domain.MealType, audience domain.Audience) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, s.catalogSize)
	for i := range recipes {
		r := domain.Recipe{
			ID:       uuid.New(),
			Name:     fmt.Sprintf("%s-recipe-%d", mealType, i),
			MealType: mealType,
			Audience: audience,
			Servings: 4,
		}
		if i%2 == 0 {
			r.DietaryTags = []domain.DietaryTag{domain.TagVegetarian}
		}
		for l := 0; l < 6; l++ {
			r.Ingredients = append(r.Ingredients, domain.RecipeIngredient{
				IngredientID: uuid.New(),
				Ingredient:   &domain.Ingredient{Name: fmt.Sprintf("ingredient-%d", l)},
				Quantity:     100,
				Unit:         "g",
				Position:     l,
			})
		}
		recipes[i] = r
	}
	return recipes, nil
}
func (s *StubRecipeRepository) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	return nil, nil
}
func (s *StubRecipeRepository) GetIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	return nil, domain.ErrIngredientNotFound
}
func (s *StubRecipeRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

type StubUserRepository struct {
	user *domain.User
}

func (s *StubUserRepository) CreateUser(ctx context.Context, user *domain.User) error { return nil }
func (s *StubUserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.user, nil
}
func (s *StubUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.user, nil
}
func (s *StubUserRepository) UpdateHousehold(ctx context.Context, user *domain.User) error {
	return nil
}

// StubBus implements event.Bus
type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error      { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

// --- Benchmark Functions ---

// BenchmarkGenerate_WeekMenu regenerates a full week against a catalog of 100
// recipes per slot.
func BenchmarkGenerate_WeekMenu(b *testing.B) {
	userID := uuid.New()
	svc := menu.NewService(
		&StubMenuRepository{userID: userID},
		&StubRecipeRepository{catalogSize: 100},
		&StubUserRepository{user: &domain.User{ID: userID, AdultsCount: 2, ChildrenCount: 2}},
		&StubBus{},
		menu.DefaultCalendar(),
	)

	ctx := context.Background()
	menuID := uuid.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := svc.Generate(ctx, menuID, menu.GenerateOptions{})
		if err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_WithFilters regenerates with a dietary policy and
// ingredient exclusions applied, the worst case for eligibility filtering.
func BenchmarkGenerate_WithFilters(b *testing.B) {
	userID := uuid.New()
	svc := menu.NewService(
		&StubMenuRepository{userID: userID},
		&StubRecipeRepository{catalogSize: 100},
		&StubUserRepository{user: &domain.User{
			ID:                  userID,
			AdultsCount:         2,
			ChildrenCount:       2,
			RequiredTags:        []domain.DietaryTag{domain.TagVegetarian},
			ExcludedIngredients: []string{"ingredient-3", "ingredient-5"},
		}},
		&StubBus{},
		menu.DefaultCalendar(),
	)

	ctx := context.Background()
	menuID := uuid.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := svc.Generate(ctx, menuID, menu.GenerateOptions{})
		if err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
