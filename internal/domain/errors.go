package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Menu errors
	ErrMsgMenuNotFound     = "menu not found"
	ErrMsgInvalidDateRange = "start date after end date"

	// User errors
	ErrMsgUserNotFound = "user not found"

	// Recipe/catalog errors
	ErrMsgRecipeNotFound     = "recipe not found"
	ErrMsgIngredientNotFound = "ingredient not found"
	ErrMsgCategoryNotFound   = "category not found"

	// Shopping list errors
	ErrMsgShoppingListNotFound = "shopping list not found"
	ErrMsgListItemNotFound     = "shopping list item not found"

	// Validation errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidServings = "servings must be positive"
	ErrMsgInvalidMealType = "invalid meal type"
	ErrMsgInvalidAudience = "invalid audience"
	ErrMsgInvalidTag      = "invalid dietary tag"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Menu errors
	ErrMenuNotFound     = errors.New(ErrMsgMenuNotFound)
	ErrInvalidDateRange = errors.New(ErrMsgInvalidDateRange)

	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Recipe/catalog errors
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)
	ErrCategoryNotFound   = errors.New(ErrMsgCategoryNotFound)

	// Shopping list errors
	ErrShoppingListNotFound = errors.New(ErrMsgShoppingListNotFound)
	ErrListItemNotFound     = errors.New(ErrMsgListItemNotFound)

	// Validation errors
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrInvalidServings = errors.New(ErrMsgInvalidServings)
	ErrInvalidMealType = errors.New(ErrMsgInvalidMealType)
	ErrInvalidAudience = errors.New(ErrMsgInvalidAudience)
	ErrInvalidTag      = errors.New(ErrMsgInvalidTag)
)
