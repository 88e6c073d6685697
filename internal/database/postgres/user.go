package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/famplan/famplan-server/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user with household defaults
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, adults_count, children_count, required_tags, excluded_ingredients)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Username, user.AdultsCount, user.ChildrenCount,
		tagsToStrings(user.RequiredTags), user.ExcludedIngredients,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxInsertUser, err)
	}
	return nil
}

// GetUserByID finds a user by internal ID
func (r *UserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return r.getUser(ctx, `WHERE user_id = $1`, userID)
}

// GetUserByUsername finds a user by username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE username = $1`, username)
}

// UpdateHousehold persists the household counts and dietary policy
func (r *UserRepository) UpdateHousehold(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET adults_count = $1, children_count = $2, required_tags = $3,
		    excluded_ingredients = $4, updated_at = NOW()
		WHERE user_id = $5
	`
	tag, err := r.db.Exec(ctx, query,
		user.AdultsCount, user.ChildrenCount, tagsToStrings(user.RequiredTags),
		user.ExcludedIngredients, user.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCtxUpdateUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) getUser(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT user_id, username, adults_count, children_count, required_tags, excluded_ingredients, created_at
		FROM users
		%s
	`, where)

	var user domain.User
	var tags []string
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.AdultsCount, &user.ChildrenCount,
		&tags, &user.ExcludedIngredients, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrCtxQueryUser, err)
	}
	user.RequiredTags = stringsToTags(tags)

	return &user, nil
}
