package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/event"
	"github.com/famplan/famplan-server/internal/logger"
	"github.com/famplan/famplan-server/internal/repository"
)

// Service defines the interface for shopping list operations
type Service interface {
	Generate(ctx context.Context, menuID, userID uuid.UUID) (*domain.ShoppingList, error)
	GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error)
	GetListsForMenu(ctx context.Context, menuID uuid.UUID) ([]domain.ShoppingList, error)
	SetItemPurchased(ctx context.Context, listID, itemID uuid.UUID, purchased bool) error
}

type service struct {
	listRepo repository.ShoppingList
	menuRepo repository.Menu
	userRepo repository.User
	eventBus event.Bus
}

// NewService creates a new shopping list service
func NewService(listRepo repository.ShoppingList, menuRepo repository.Menu, userRepo repository.User, eventBus event.Bus) Service {
	return &service{
		listRepo: listRepo,
		menuRepo: menuRepo,
		userRepo: userRepo,
		eventBus: eventBus,
	}
}

// Generate aggregates the menu's assigned recipes into a fresh shopping
// list for the user. A menu with no assigned recipes yields an empty list,
// not an error.
func (s *service) Generate(ctx context.Context, menuID, userID uuid.UUID) (*domain.ShoppingList, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGenerateCalled, "menu_id", menuID, "user_id", userID)

	menu, err := s.menuRepo.GetMenuWithRecipes(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetMenu, err)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetUser, err)
	}

	list := &domain.ShoppingList{
		MenuID: menu.ID,
		UserID: user.ID,
		Items:  aggregate(menu.Meals, user),
	}

	if err := s.listRepo.CreateList(ctx, list); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToCreateList, err)
	}

	log.Info(LogMsgGenerateComplete, "shopping_list_id", list.ID, "items", len(list.Items))

	s.publishGenerated(ctx, list)

	return list, nil
}

// GetList fetches a shopping list with its items
func (s *service) GetList(ctx context.Context, listID uuid.UUID) (*domain.ShoppingList, error) {
	list, err := s.listRepo.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetList, err)
	}
	return list, nil
}

// GetListsForMenu fetches all lists generated for a menu, newest first
func (s *service) GetListsForMenu(ctx context.Context, menuID uuid.UUID) ([]domain.ShoppingList, error) {
	lists, err := s.listRepo.GetListsForMenu(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetList, err)
	}
	return lists, nil
}

// SetItemPurchased toggles the purchased flag on one item
func (s *service) SetItemPurchased(ctx context.Context, listID, itemID uuid.UUID, purchased bool) error {
	if err := s.listRepo.SetItemPurchased(ctx, listID, itemID, purchased); err != nil {
		return fmt.Errorf("%s: %w", ErrCtxFailedToSetItem, err)
	}
	return nil
}

func (s *service) publishGenerated(ctx context.Context, list *domain.ShoppingList) {
	if s.eventBus == nil {
		return
	}
	err := s.eventBus.Publish(ctx, event.Event{
		Version: "1.0",
		Type:    event.ShoppingListGenerated,
		Payload: event.ShoppingListGeneratedPayloadV1{
			ShoppingListID: list.ID.String(),
			MenuID:         list.MenuID.String(),
			UserID:         list.UserID.String(),
			ItemCount:      len(list.Items),
		},
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishError, "error", err)
	}
}
