package shopping

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/famplan/famplan-server/internal/domain"
)

func TestGenerate_Success(t *testing.T) {
	listRepo := new(MockShoppingListRepository)
	menuRepo := new(MockMenuRepository)
	userRepo := new(MockUserRepository)

	user := household(2, 2)
	recipe := chickenRice(4)
	menu := &domain.Menu{
		ID:     uuid.New(),
		UserID: user.ID,
		Meals: []domain.Meal{
			mealWith(domain.AudienceBoth, recipe),
		},
	}

	menuRepo.On("GetMenuWithRecipes", mock.Anything, menu.ID).Return(menu, nil)
	userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
	listRepo.On("CreateList", mock.Anything, mock.AnythingOfType("*domain.ShoppingList")).Return(nil)

	svc := NewService(listRepo, menuRepo, userRepo, nil)

	list, err := svc.Generate(context.Background(), menu.ID, user.ID)

	require.NoError(t, err)
	assert.Equal(t, menu.ID, list.MenuID)
	assert.Equal(t, user.ID, list.UserID)
	require.Len(t, list.Items, 2)
	assert.Equal(t, 200.0, list.Items[0].Quantity)
	listRepo.AssertExpectations(t)
}

func TestGenerate_EmptyMenuYieldsEmptyList(t *testing.T) {
	listRepo := new(MockShoppingListRepository)
	menuRepo := new(MockMenuRepository)
	userRepo := new(MockUserRepository)

	user := household(2, 1)
	menu := &domain.Menu{ID: uuid.New(), UserID: user.ID}

	menuRepo.On("GetMenuWithRecipes", mock.Anything, menu.ID).Return(menu, nil)
	userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
	listRepo.On("CreateList", mock.Anything, mock.AnythingOfType("*domain.ShoppingList")).Return(nil)

	svc := NewService(listRepo, menuRepo, userRepo, nil)

	list, err := svc.Generate(context.Background(), menu.ID, user.ID)

	require.NoError(t, err, "a menu with no assigned recipes is not an error")
	assert.Empty(t, list.Items)
}

func TestGenerate_MenuNotFound(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	menuID := uuid.New()
	menuRepo.On("GetMenuWithRecipes", mock.Anything, menuID).Return(nil, domain.ErrMenuNotFound)

	svc := NewService(new(MockShoppingListRepository), menuRepo, new(MockUserRepository), nil)

	_, err := svc.Generate(context.Background(), menuID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}

func TestGenerate_UserNotFound(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	userRepo := new(MockUserRepository)

	menu := &domain.Menu{ID: uuid.New(), UserID: uuid.New()}
	userID := uuid.New()

	menuRepo.On("GetMenuWithRecipes", mock.Anything, menu.ID).Return(menu, nil)
	userRepo.On("GetUserByID", mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	svc := NewService(new(MockShoppingListRepository), menuRepo, userRepo, nil)

	_, err := svc.Generate(context.Background(), menu.ID, userID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGenerate_PersistFailure(t *testing.T) {
	listRepo := new(MockShoppingListRepository)
	menuRepo := new(MockMenuRepository)
	userRepo := new(MockUserRepository)

	user := household(2, 0)
	menu := &domain.Menu{ID: uuid.New(), UserID: user.ID}
	dbErr := errors.New("connection reset")

	menuRepo.On("GetMenuWithRecipes", mock.Anything, menu.ID).Return(menu, nil)
	userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
	listRepo.On("CreateList", mock.Anything, mock.AnythingOfType("*domain.ShoppingList")).Return(dbErr)

	svc := NewService(listRepo, menuRepo, userRepo, nil)

	_, err := svc.Generate(context.Background(), menu.ID, user.ID)
	assert.ErrorIs(t, err, dbErr)
}

func TestSetItemPurchased(t *testing.T) {
	listRepo := new(MockShoppingListRepository)
	listID, itemID := uuid.New(), uuid.New()
	listRepo.On("SetItemPurchased", mock.Anything, listID, itemID, true).Return(nil)

	svc := NewService(listRepo, new(MockMenuRepository), new(MockUserRepository), nil)

	err := svc.SetItemPurchased(context.Background(), listID, itemID, true)
	require.NoError(t, err)
	listRepo.AssertExpectations(t)
}

func TestSetItemPurchased_NotFound(t *testing.T) {
	listRepo := new(MockShoppingListRepository)
	listID, itemID := uuid.New(), uuid.New()
	listRepo.On("SetItemPurchased", mock.Anything, listID, itemID, false).Return(domain.ErrListItemNotFound)

	svc := NewService(listRepo, new(MockMenuRepository), new(MockUserRepository), nil)

	err := svc.SetItemPurchased(context.Background(), listID, itemID, false)
	assert.ErrorIs(t, err, domain.ErrListItemNotFound)
}
