package catalog

// Log messages
const (
	LogMsgCreateRecipeCalled = "CreateRecipe called"
	LogMsgRecipeCreated      = "Recipe created"
)

// Error contexts
const (
	ErrCtxFailedToCreateRecipe    = "failed to create recipe"
	ErrCtxFailedToGetRecipe       = "failed to get recipe"
	ErrCtxFailedToListRecipes     = "failed to list recipes"
	ErrCtxFailedToListIngredients = "failed to list ingredients"
	ErrCtxFailedToListCategories  = "failed to list categories"
	ErrCtxFailedToGetIngredient   = "failed to get ingredient"
)
