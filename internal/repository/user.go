package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateHousehold persists the household counts and dietary policy.
	UpdateHousehold(ctx context.Context, user *domain.User) error
}
