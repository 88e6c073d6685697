package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/famplan/famplan-server/internal/catalog"
	"github.com/famplan/famplan-server/internal/domain"
	"github.com/famplan/famplan-server/internal/logger"
)

type RecipeHandler struct {
	service catalog.Service
}

func NewRecipeHandler(service catalog.Service) *RecipeHandler {
	return &RecipeHandler{service: service}
}

type RecipeIngredientRequest struct {
	IngredientID   string  `json:"ingredient_id" validate:"omitempty,uuid"`
	IngredientName string  `json:"ingredient_name" validate:"required_without=IngredientID"`
	Quantity       float64 `json:"quantity" validate:"required,gt=0"`
	Unit           string  `json:"unit" validate:"required"`
	Notes          string  `json:"notes"`
}

type CreateRecipeRequest struct {
	Name        string                    `json:"name" validate:"required,max=200"`
	MealType    string                    `json:"meal_type" validate:"required,mealtype"`
	Audience    string                    `json:"audience" validate:"required,audience"`
	Servings    int                       `json:"servings" validate:"required,gt=0"`
	DietaryTags []string                  `json:"dietary_tags" validate:"omitempty,dive,dietarytag"`
	Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
}

func (h *RecipeHandler) HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req CreateRecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
		return
	}

	recipe, ok := buildRecipe(w, req)
	if !ok {
		return
	}

	created, err := h.service.CreateRecipe(r.Context(), recipe)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgCreateRecipeFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *RecipeHandler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := GetUUIDParam(r, w, "id")
	if !ok {
		return
	}

	recipe, err := h.service.GetRecipe(r.Context(), recipeID)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetRecipeFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, recipe)
}

func (h *RecipeHandler) HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.ListRecipes(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListRecipesFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, recipes)
}

func (h *RecipeHandler) HandleListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.service.ListIngredients(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListIngredientsFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, ingredients)
}

func (h *RecipeHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListCategoriesFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

func buildRecipe(w http.ResponseWriter, req CreateRecipeRequest) (*domain.Recipe, bool) {
	recipe := &domain.Recipe{
		Name:     req.Name,
		MealType: domain.MealType(req.MealType),
		Audience: domain.Audience(req.Audience),
		Servings: req.Servings,
	}
	for _, tag := range req.DietaryTags {
		recipe.DietaryTags = append(recipe.DietaryTags, domain.DietaryTag(tag))
	}
	for _, line := range req.Ingredients {
		ri := domain.RecipeIngredient{
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Notes:    line.Notes,
		}
		if line.IngredientID != "" {
			id, err := uuid.Parse(line.IngredientID)
			if err != nil {
				http.Error(w, ErrMsgInvalidID, http.StatusBadRequest)
				return nil, false
			}
			ri.IngredientID = id
		} else {
			ri.Ingredient = &domain.Ingredient{Name: line.IngredientName}
		}
		recipe.Ingredients = append(recipe.Ingredients, ri)
	}
	return recipe, true
}
