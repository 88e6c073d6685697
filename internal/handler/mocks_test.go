package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/menu"
)

// MockMenuService
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) CreateMenu(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*domain.Menu, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *MockMenuService) Generate(ctx context.Context, menuID uuid.UUID, opts menu.GenerateOptions) (*domain.Menu, error) {
	args := m.Called(ctx, menuID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *MockMenuService) GetMenu(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

func (m *MockMenuService) GetActiveMenu(ctx context.Context, userID uuid.UUID) (*domain.Menu, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Menu), args.Error(1)
}

// MockShoppingService
type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) Generate(ctx context.Context, menuID, userID uuid.UUID) (*domain.ShoppingList, error) {
	args := m.Called(ctx, menuID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingService) GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingService) GetListsForMenu(ctx context.Context, menuID uuid.UUID) ([]domain.ShoppingList, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingService) SetItemPurchased(ctx context.Context, listID, itemID uuid.UUID, purchased bool) error {
	args := m.Called(ctx, listID, itemID, purchased)
	return args.Error(0)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockCatalogService) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockCatalogService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockCatalogService) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, username string, adults, children int) (*domain.User, error) {
	args := m.Called(ctx, username, adults, children)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateHousehold(ctx context.Context, userID uuid.UUID, adults, children int, requiredTags []domain.DietaryTag, excludedIngredients []string) (*domain.User, error) {
	args := m.Called(ctx, userID, adults, children, requiredTags, excludedIngredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
