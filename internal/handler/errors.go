package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidID         = "Invalid id parameter"
	ErrMsgInvalidDate       = "Invalid date, expected YYYY-MM-DD"
	ErrMsgInvalidTag        = "Invalid dietary tag"

	// Menu operation error messages
	ErrMsgCreateMenuFailed   = "Failed to create menu"
	ErrMsgGenerateMenuFailed = "Failed to generate menu"
	ErrMsgGetMenuFailed      = "Failed to get menu"

	// Shopping list operation error messages
	ErrMsgGenerateListFailed = "Failed to generate shopping list"
	ErrMsgGetListFailed      = "Failed to get shopping list"
	ErrMsgUpdateItemFailed   = "Failed to update shopping list item"

	// Catalog operation error messages
	ErrMsgCreateRecipeFailed    = "Failed to create recipe"
	ErrMsgGetRecipeFailed       = "Failed to get recipe"
	ErrMsgListRecipesFailed     = "Failed to list recipes"
	ErrMsgListIngredientsFailed = "Failed to list ingredients"
	ErrMsgListCategoriesFailed  = "Failed to list categories"

	// User management error messages
	ErrMsgRegisterUserFailed    = "Failed to register user"
	ErrMsgGetUserFailed         = "Failed to get user"
	ErrMsgUpdateHouseholdFailed = "Failed to update household"
)

// Success messages
const (
	MsgItemUpdated = "Shopping list item updated"
)
