package menu

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/event"
	"github.com/famplan/famplan-server/internal/logger"
	"github.com/famplan/famplan-server/internal/repository"
)

// GenerateOptions carries the caller-supplied constraints for one generation
// run. Zero values fall back to the menu owner's stored dietary policy.
type GenerateOptions struct {
	ExcludeRecipeIDs   []uuid.UUID
	RequireTags        []domain.DietaryTag
	ExcludeIngredients []string
}

// Service defines the interface for menu operations
type Service interface {
	CreateMenu(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*domain.Menu, error)
	Generate(ctx context.Context, menuID uuid.UUID, opts GenerateOptions) (*domain.Menu, error)
	GetMenu(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error)
	GetActiveMenu(ctx context.Context, userID uuid.UUID) (*domain.Menu, error)
}

type service struct {
	menuRepo   repository.Menu
	recipeRepo repository.Recipe
	userRepo   repository.User
	eventBus   event.Bus
	calendar   SlotCalendar
	pick       func(n int) int // uniform pick in [0, n); injected for deterministic tests
}

// NewService creates a new menu service
func NewService(menuRepo repository.Menu, recipeRepo repository.Recipe, userRepo repository.User, eventBus event.Bus, calendar SlotCalendar) Service {
	return &service{
		menuRepo:   menuRepo,
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
		eventBus:   eventBus,
		calendar:   calendar,
		pick:       rand.Intn, //nolint:gosec // meal selection randomness, not security critical
	}
}

// NewServiceWithRand creates a menu service with a seeded random source
func NewServiceWithRand(menuRepo repository.Menu, recipeRepo repository.Recipe, userRepo repository.User, eventBus event.Bus, calendar SlotCalendar, rnd *rand.Rand) Service {
	svc := NewService(menuRepo, recipeRepo, userRepo, eventBus, calendar).(*service)
	svc.pick = rnd.Intn
	return svc
}

// CreateMenu creates a new active menu for the user, deactivating any prior
// active menu.
func (s *service) CreateMenu(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*domain.Menu, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateMenuCalled, "user_id", userID, "start_date", startDate, "end_date", endDate)

	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetUser, err)
	}

	menu := &domain.Menu{
		UserID:    userID,
		StartDate: domain.DayOf(startDate),
		EndDate:   domain.DayOf(endDate),
		Active:    true,
	}
	if err := menu.ValidateRange(); err != nil {
		return nil, err
	}

	if err := s.menuRepo.CreateMenu(ctx, menu); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToCreateMenu, err)
	}

	return menu, nil
}

// GetMenu fetches a menu with its meals
func (s *service) GetMenu(ctx context.Context, menuID uuid.UUID) (*domain.Menu, error) {
	menu, err := s.menuRepo.GetMenu(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetMenu, err)
	}
	return menu, nil
}

// GetActiveMenu fetches the user's active menu
func (s *service) GetActiveMenu(ctx context.Context, userID uuid.UUID) (*domain.Menu, error) {
	menu, err := s.menuRepo.GetActiveMenu(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetMenu, err)
	}
	return menu, nil
}
