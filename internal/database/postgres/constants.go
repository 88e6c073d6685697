package postgres

// Error context messages for wrapped repository errors
const (
	ErrCtxBeginTx  = "failed to begin transaction"
	ErrCtxCommitTx = "failed to commit transaction"

	ErrCtxInsertMenu       = "failed to insert menu"
	ErrCtxQueryMenu        = "failed to query menu"
	ErrCtxQueryMeals       = "failed to query meals"
	ErrCtxScanMeal         = "failed to scan meal"
	ErrCtxDeleteMeals      = "failed to delete meals"
	ErrCtxInsertMeal       = "failed to insert meal"
	ErrCtxDeactivateMenus  = "failed to deactivate menus"
	ErrCtxQueryRecipes     = "failed to query recipes"
	ErrCtxScanRecipe       = "failed to scan recipe"
	ErrCtxQueryIngredients = "failed to query ingredients"
	ErrCtxScanIngredient   = "failed to scan ingredient"
	ErrCtxInsertRecipe     = "failed to insert recipe"
	ErrCtxQueryCategories  = "failed to query categories"
	ErrCtxInsertList       = "failed to insert shopping list"
	ErrCtxInsertListItem   = "failed to insert shopping list item"
	ErrCtxQueryList        = "failed to query shopping list"
	ErrCtxQueryListItems   = "failed to query shopping list items"
	ErrCtxUpdateListItem   = "failed to update shopping list item"
	ErrCtxInsertUser       = "failed to insert user"
	ErrCtxQueryUser        = "failed to query user"
	ErrCtxUpdateUser       = "failed to update user"
)
