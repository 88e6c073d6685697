package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/famplan/famplan-server/internal/domain"
)

func validCreateRecipeRequest() CreateRecipeRequest {
	return CreateRecipeRequest{
		Name:        "Chicken and rice",
		MealType:    "dinner",
		Audience:    "both",
		Servings:    4,
		DietaryTags: []string{"gluten_free"},
		Ingredients: []RecipeIngredientRequest{
			{IngredientName: "chicken breast", Quantity: 600, Unit: "g"},
			{IngredientName: "rice", Quantity: 300, Unit: "g"},
		},
	}
}

func TestHandleCreateRecipe(t *testing.T) {
	recipeID := uuid.MustParse("00000000-0000-0000-0000-000000000031")

	tests := []struct {
		name           string
		mutate         func(*CreateRecipeRequest)
		setupMocks     func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name:           "Invalid meal type",
			mutate:         func(r *CreateRecipeRequest) { r.MealType = "breakfast" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid audience",
			mutate:         func(r *CreateRecipeRequest) { r.Audience = "everyone" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Zero servings",
			mutate:         func(r *CreateRecipeRequest) { r.Servings = 0 },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "No ingredients",
			mutate:         func(r *CreateRecipeRequest) { r.Ingredients = nil },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown dietary tag",
			mutate:         func(r *CreateRecipeRequest) { r.DietaryTags = []string{"organic"} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown ingredient",
			setupMocks: func(ms *MockCatalogService) {
				ms.On("CreateRecipe", mock.Anything, mock.AnythingOfType("*domain.Recipe")).
					Return(nil, domain.ErrIngredientNotFound)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Success",
			setupMocks: func(ms *MockCatalogService) {
				ms.On("CreateRecipe", mock.Anything, mock.AnythingOfType("*domain.Recipe")).
					Return(&domain.Recipe{ID: recipeID, Name: "Chicken and rice"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockService)
			}
			h := NewRecipeHandler(mockService)

			reqBody := validCreateRecipeRequest()
			if tt.mutate != nil {
				tt.mutate(&reqBody)
			}
			body, _ := json.Marshal(reqBody)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.HandleCreateRecipe(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandleListRecipes(t *testing.T) {
	mockService := new(MockCatalogService)
	mockService.On("ListRecipes", mock.Anything).Return([]domain.Recipe{
		{ID: uuid.New(), Name: "Lentil soup"},
	}, nil)
	h := NewRecipeHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	rec := httptest.NewRecorder()

	h.HandleListRecipes(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lentil soup")
}

func TestHandleGetRecipe_NotFound(t *testing.T) {
	recipeID := uuid.MustParse("00000000-0000-0000-0000-000000000032")
	mockService := new(MockCatalogService)
	mockService.On("GetRecipe", mock.Anything, recipeID).Return(nil, domain.ErrRecipeNotFound)
	h := NewRecipeHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/get?id="+recipeID.String(), nil)
	rec := httptest.NewRecorder()

	h.HandleGetRecipe(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgRecipeNotFoundError)
}

func TestHandleListIngredients(t *testing.T) {
	mockService := new(MockCatalogService)
	mockService.On("ListIngredients", mock.Anything).Return([]domain.Ingredient{
		{ID: uuid.New(), Name: "rice", DefaultUnit: "g"},
	}, nil)
	h := NewRecipeHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil)
	rec := httptest.NewRecorder()

	h.HandleListIngredients(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rice")
}

func TestHandleListCategories(t *testing.T) {
	mockService := new(MockCatalogService)
	mockService.On("ListCategories", mock.Anything).Return([]domain.Category{
		{ID: uuid.New(), Name: "Produce", SortOrder: 10},
	}, nil)
	h := NewRecipeHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()

	h.HandleListCategories(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Produce")
}
