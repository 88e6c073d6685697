package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/logger"
	"github.com/famplan/famplan-server/internal/repository"
)

// Service defines the interface for user and household operations
type Service interface {
	RegisterUser(ctx context.Context, username string, adults, children int) (*domain.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateHousehold replaces the household counts and dietary policy in
	// one call. Tags and exclusions are full replacements, not merges.
	UpdateHousehold(ctx context.Context, userID uuid.UUID, adults, children int, requiredTags []domain.DietaryTag, excludedIngredients []string) (*domain.User, error)
}

type service struct {
	repo repository.User
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

func (s *service) RegisterUser(ctx context.Context, username string, adults, children int) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterUserCalled, "username", username)

	if username == "" || adults < 0 || children < 0 {
		return nil, domain.ErrInvalidInput
	}

	u := &domain.User{
		Username:      username,
		AdultsCount:   adults,
		ChildrenCount: children,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToCreateUser, err)
	}

	log.Info(LogMsgUserRegistered, "user_id", u.ID, "username", u.Username)
	return u, nil
}

func (s *service) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetUser, err)
	}
	return u, nil
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetUser, err)
	}
	return u, nil
}

func (s *service) UpdateHousehold(ctx context.Context, userID uuid.UUID, adults, children int, requiredTags []domain.DietaryTag, excludedIngredients []string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpdateHouseholdCalled, "user_id", userID, "adults", adults, "children", children)

	if adults < 0 || children < 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, tag := range requiredTags {
		if !tag.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTag, tag)
		}
	}

	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToGetUser, err)
	}

	u.AdultsCount = adults
	u.ChildrenCount = children
	u.RequiredTags = requiredTags
	u.ExcludedIngredients = excludedIngredients

	if err := s.repo.UpdateHousehold(ctx, u); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCtxFailedToUpdateUser, err)
	}

	log.Info(LogMsgHouseholdUpdated, "user_id", u.ID)
	return u, nil
}
